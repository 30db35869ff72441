package main

import "pong/internal/game"

func main() {
	game.RunDesktop()
}
