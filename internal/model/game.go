package model

// Game - идентификатор игры в аудите и статистике
type Game string

const (
	GameWheel     Game = "wheel"
	GameSlots     Game = "slots"
	GameSicBo     Game = "sicbo"
	GameRoulette  Game = "roulette"
	GamePinball   Game = "pinball"
	GameBaccarat  Game = "baccarat"
	GameBlackjack Game = "blackjack"
	GameUTH       Game = "uth"
	GameWallet    Game = "wallet"
)
