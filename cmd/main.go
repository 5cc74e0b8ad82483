package main

import (
	"os"
	_ "time/tzdata"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/cmd/hooks"
	"github.com/gummi-coder/Novora-sub009/cmd/server"
	"github.com/gummi-coder/Novora-sub009/cmd/version"
	"github.com/gummi-coder/Novora-sub009/cmd/worker"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/cli"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

func main() {
	if err := os.Setenv("TZ", ""); err != nil { // Use UTC by default :)
		log.Fatal("failed to set env - ", err)
	}

	app := &cli.App{Version: novora.GetVersion()}

	c := cli.NewCli(app)

	var configFile string
	var logLevel string
	var queueType string
	var redisDsn string

	c.Flags().StringVar(&configFile, "config", "./novora.json", "Configuration file for novora")
	c.Flags().StringVar(&logLevel, "log-level", "", "Log level")
	c.Flags().StringVar(&queueType, "queue", "", "Queue provider (redis or in-memory)")
	c.Flags().StringVar(&redisDsn, "redis", "", "Redis dsn")

	c.PersistentPreRunE(hooks.PreRun(app))
	c.PersistentPostRunE(hooks.PostRun(app))

	c.AddCommand(version.AddVersionCommand())
	c.AddCommand(server.AddServerCommand(app))
	c.AddCommand(worker.AddWorkerCommand(app))

	if err := c.Execute(); err != nil {
		log.Fatal(err)
	}
}
