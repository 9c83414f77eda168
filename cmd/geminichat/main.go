package main

import "github.com/RidhamVashishth/Chatbot-using-Gemini/internal/commands"

func main() {
	commands.Execute()
}
