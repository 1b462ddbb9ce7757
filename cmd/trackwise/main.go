// cmd/trackwise/main.go
package main

import (
	"context"

	"github.com/dalemusser/waffle/app"

	"github.com/Yashh-Garg/Trackwise/internal/app/bootstrap"
)

func main() {
	app.Run(context.Background(), bootstrap.Hooks)
}
