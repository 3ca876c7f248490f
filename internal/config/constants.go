package config

import "time"

// Base application details
const AppName = "hollow"
const Version = "0.3.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "hollow.log"

// UI Layout
const StatusBarHeight = 1
const DefaultHistoryWidth = 30
const MinHistoryWidth = 12

// Status Bar
const MessageTimeout = 4 * time.Second

// Map editing
const DefaultGridSize = 8
const SystemClipboard = true
