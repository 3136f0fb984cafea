package main

import (
	"github.com/joho/godotenv"

	"github.com/mkiyama/gitlogview/cmd"
)

func main() {
	// Optional .env for GITLOGVIEW_* settings; a missing file is fine.
	_ = godotenv.Load()

	cmd.Run()
}
