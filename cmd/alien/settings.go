package main

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// savedSettings is what the viewer remembers between runs.
type savedSettings struct {
	Level string  `json:"level"`
	Scale float64 `json:"scale"`
}

var gdataManager *gdata.Manager

func initPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "jumpingalien",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

func loadSettings() savedSettings {
	var s savedSettings
	if gdataManager == nil {
		return s
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return s
	}
	if data == nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return savedSettings{}
	}
	return s
}

func saveSettings(s savedSettings) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
