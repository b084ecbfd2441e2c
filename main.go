package main

import (
	"context"
	"time"

	"github.com/kulnaak/Data-Manipulator-Web-App/internal/app"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application := app.New()
	wait := application.Start()
	<-wait
	application.Stop(ctx)
}
