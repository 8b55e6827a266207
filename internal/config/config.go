package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "./config/application.yaml"

type Application struct {
	Listen       string       `koanf:"listen"`
	EventService EventService `koanf:"eventservice"`
	Banner       Banner       `koanf:"banner"`
	Session      Session      `koanf:"session"`
}

// EventService points at the remote API that owns the event records.
type EventService struct {
	BaseURL string `koanf:"baseurl"`
}

type Banner struct {
	HideAfter time.Duration `koanf:"hideafter"`
}

type Session struct {
	IdleTimeout time.Duration `koanf:"idletimeout"`
}

func Defaults() Application {
	return Application{
		Listen: ":8181",
		EventService: EventService{
			BaseURL: "http://localhost:5000",
		},
		Banner: Banner{
			HideAfter: 3000 * time.Millisecond,
		},
		Session: Session{
			IdleTimeout: 30 * time.Minute,
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "EVENTBOARD_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "EVENTBOARD_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	app.EventService.BaseURL = strings.TrimRight(app.EventService.BaseURL, "/")

	return app, nil
}
