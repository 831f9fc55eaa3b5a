package studygo

import (
	"fmt"
	"log"
	"os"
	"path"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Backend     string // "sqlite" or "json"
	DatabaseURL string
	DataFile    string
	LogLevel    string
	LogPath     string
	TimeFormat  string
	DailyHours  float64
}

const (
	DefaultBackend    = "sqlite"
	DefaultLogLevel   = "WARN"
	DefaultTimeFormat = "Mon Jan 2"
	DefaultDailyHours = 2.0
)

var (
	userHome, _        = os.UserHomeDir()
	DefaultDatabaseURL = path.Join(userHome, ".studygo", "studygo.db")
	DefaultDataFile    = path.Join(userHome, ".studygo", "tasks.json")
	DefaultLogPath     = path.Join(userHome, ".studygo", "studygo.log")
)

func LoadConfig() Config {
	confFromEnv := configFromEnv()

	if os.Getenv("STUDYGO_DEV_MODE") != "" {
		fmt.Println("Dev mode is on!")
		confFromEnv.LogLevel = "DEBUG"
		confFromEnv.DatabaseURL = path.Join(os.TempDir(), "studygo-test.db")
		confFromEnv.DataFile = path.Join(os.TempDir(), "studygo-test.json")
		confFromEnv.LogPath = path.Join(userHome, ".studygo", "dev.log")
		f, err := os.OpenFile(confFromEnv.DatabaseURL, os.O_CREATE|os.O_TRUNC, 0o744)
		if err != nil {
			panic(err)
		}
		_ = f.Close()
	}

	// load file
	cfgDir, _ := os.UserConfigDir()
	cfgDir = path.Join(cfgDir, "studygo")
	confFile := path.Join(cfgDir, "studygo.conf")
	if _, err := os.Stat(confFile); err != nil {
		log.Println("creating default conf file")
		if err := os.MkdirAll(cfgDir, 0o744); err != nil {
			panic(err)
		}
		f, err := os.Create(confFile)
		if err != nil {
			panic(err)
		}
		defaults := []string{
			"STUDYGO_BACKEND=" + DefaultBackend,
			"STUDYGO_DB_URL=" + DefaultDatabaseURL,
			"STUDYGO_DATA_FILE=" + DefaultDataFile,
			"STUDYGO_LOG_LEVEL=" + DefaultLogLevel,
			"STUDYGO_LOG_PATH=" + DefaultLogPath,
			"STUDYGO_TIME_FORMAT=" + DefaultTimeFormat,
			"STUDYGO_DAILY_HOURS=" + strconv.FormatFloat(DefaultDailyHours, 'f', -1, 64),
		}
		for _, line := range defaults {
			if _, err := f.WriteString(line + "\n"); err != nil {
				panic(err)
			}
		}
		_ = f.Close()
	}
	if err := godotenv.Load(confFile); err != nil {
		panic(err)
	}
	confFromFile := configFromEnv()

	return Config{
		Backend:     coalesce(confFromEnv.Backend, confFromFile.Backend, DefaultBackend),
		DatabaseURL: coalesce(confFromEnv.DatabaseURL, confFromFile.DatabaseURL, DefaultDatabaseURL),
		DataFile:    coalesce(confFromEnv.DataFile, confFromFile.DataFile, DefaultDataFile),
		LogLevel:    coalesce(confFromEnv.LogLevel, confFromFile.LogLevel, DefaultLogLevel),
		LogPath:     coalesce(confFromEnv.LogPath, confFromFile.LogPath, DefaultLogPath),
		TimeFormat:  coalesce(confFromEnv.TimeFormat, confFromFile.TimeFormat, DefaultTimeFormat),
		DailyHours:  coalesceFloat(confFromEnv.DailyHours, confFromFile.DailyHours, DefaultDailyHours),
	}
}

func configFromEnv() Config {
	hours, _ := strconv.ParseFloat(os.Getenv("STUDYGO_DAILY_HOURS"), 64)
	return Config{
		Backend:     os.Getenv("STUDYGO_BACKEND"),
		DatabaseURL: os.Getenv("STUDYGO_DB_URL"),
		DataFile:    os.Getenv("STUDYGO_DATA_FILE"),
		LogLevel:    os.Getenv("STUDYGO_LOG_LEVEL"),
		LogPath:     os.Getenv("STUDYGO_LOG_PATH"),
		TimeFormat:  os.Getenv("STUDYGO_TIME_FORMAT"),
		DailyHours:  hours,
	}
}

func coalesce(args ...string) string {
	for _, s := range args {
		if s != "" {
			return s
		}
	}
	return ""
}

func coalesceFloat(args ...float64) float64 {
	for _, f := range args {
		if f > 0 {
			return f
		}
	}
	return 0
}
