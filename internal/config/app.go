package config

import "github.com/joho/godotenv"

type AppConfig struct {
	Server   ServerConfig
	Log      LogConfig
	Baccarat BaccaratConfig
	Poker    PokerConfig
}

// LoadApp reads an optional .env file, then every config section from the
// environment. Variables already set in the environment win over .env.
func LoadApp() (AppConfig, error) {
	_ = godotenv.Load()

	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	baccaratCfg, err := LoadBaccarat()
	if err != nil {
		return AppConfig{}, err
	}
	pokerCfg, err := LoadPoker()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server:   serverCfg,
		Log:      logCfg,
		Baccarat: baccaratCfg,
		Poker:    pokerCfg,
	}, nil
}
