package config

const (
	// Default save locations, relative to the working directory.
	DefaultSaveFile         = "PlayerData.xml"
	DefaultSaveDatabaseFile = "PlayerData.db"
)
