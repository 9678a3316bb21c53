package logger

const GameStartMsg = "game started"
const GameStopMsg = "game stopped"

const ConfigLoadedMsg = "configuration loaded"
const LevelReloadedMsg = "log level reloaded"

const PaddleHitMsg = "ball hit paddle"
const WallHitMsg = "ball hit wall"
const ScoreMsg = "point scored"
const ScoreWrapMsg = "score passed 9, counters reset"

const FrameDroppedMsg = "advance still pending, tick dropped"
const FullRedrawMsg = "full repaint"

const PitchMsg = "buzzer pitch"
const MelodyStartMsg = "melody started"

const ScreenInitFailMsg = "terminal init failed"
