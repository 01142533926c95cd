package core

import (
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Mail backends
const (
	MailBackendConsole  = "console"
	MailBackendSendgrid = "sendgrid"
)

// CourseConfig is a catalog entry as it appears in the configuration.
type CourseConfig struct {
	Name                string `json:"name" mapstructure:"name" validate:"required,notblank"`
	CompletionThreshold int    `json:"completion_threshold" mapstructure:"completion_threshold" validate:"gt=0"`
}

type Config struct {
	AppName          string
	Env              string // DEV (local; default), TEST, QA, PROD
	Build            string
	Debug            bool
	TestMode         bool
	IDStart          int
	MailBackend      string
	DefaultFromEmail mail.Address
	SendgridAPIKey   string
	RollbarToken     string
	Prompt           string
	Courses          []CourseConfig `validate:"required,min=1,dive"`
}

var defaultCourses = []map[string]interface{}{
	{"name": "Python", "completion_threshold": 600},
	{"name": "DSA", "completion_threshold": 400},
	{"name": "Databases", "completion_threshold": 480},
	{"name": "Flask", "completion_threshold": 550},
}

// NewConfig loads the configuration from defaults, the optional `.env.<env>` file,
// the optional `tracker.yaml` file and the environment, in increasing order of priority.
func NewConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}

	v.SetConfigName("tracker")
	v.SetConfigType("yaml")
	v.AddConfigPath(wd)
	v.AddConfigPath(filepath.Join(wd, "config"))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
	}
	v.AutomaticEnv()

	return configFromViper(v, env)
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("appName", "Learning Progress Tracker")
	v.SetDefault("build", "dev")
	v.SetDefault("idStart", 10000)
	v.SetDefault("mailBackend", MailBackendConsole)
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("prompt", "> ")
	v.SetDefault("courses", defaultCourses)
}

func configFromViper(v *viper.Viper, env string) (*Config, error) {
	conf := &Config{
		AppName:        v.GetString("appName"),
		Env:            env,
		Build:          v.GetString("build"),
		Debug:          v.GetBool("debug"),
		TestMode:       v.GetBool("testMode"),
		IDStart:        v.GetInt("idStart"),
		MailBackend:    strings.ToLower(v.GetString("mailBackend")),
		SendgridAPIKey: v.GetString("sendgridApiKey"),
		RollbarToken:   v.GetString("rollbarToken"),
		Prompt:         v.GetString("prompt"),
	}

	from, err := mail.ParseAddress(v.GetString("defaultFromEmail"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing defaultFromEmail")
	}
	conf.DefaultFromEmail = *from

	if err := v.UnmarshalKey("courses", &conf.Courses); err != nil {
		return nil, errors.Wrap(err, "decoding courses")
	}

	switch conf.MailBackend {
	case MailBackendConsole:
	case MailBackendSendgrid:
		if conf.SendgridAPIKey == "" {
			return nil, errors.New("sendgridApiKey is required by the sendgrid mail backend")
		}
	default:
		return nil, errors.Errorf("unknown mail backend %q", conf.MailBackend)
	}

	validate, _ := NewValidator()
	if err := validate.Struct(conf); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return conf, nil
}
