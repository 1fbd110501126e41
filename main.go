/*
Copyright © 2025 StudyWing Authors
*/
package main

import (
	"github.com/studywing/studywing/cmd"
	"github.com/studywing/studywing/internal/logger"
)

func main() {
	defer logger.HandlePanic()
	cmd.Execute()
}
