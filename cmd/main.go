package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
)

func init() {
	// Never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           roomescape
// @version         1.0
// @description     Room escape reservation API: time slots, themes, reservations and theme rankings.

// @BasePath  /
// @schemes http https
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
