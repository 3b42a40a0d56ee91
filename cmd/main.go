package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"crousmenu/internal/conf"
	"crousmenu/internal/crous"
	"crousmenu/internal/httpclient"
	"crousmenu/internal/menu"
)

func main() {
	c, err := conf.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration:", err)
		os.Exit(1)
	}
	conf.SetupLogging(c)

	client, err := httpclient.New(httpclient.Options{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		Proxy:   c.Proxy,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "http client:", err)
		os.Exit(1)
	}
	log.WithFields(log.Fields{
		"base-url": c.BaseURL,
		"timeout":  c.Timeout,
		"proxy":    c.Proxy != "",
	}).Debug("[main] Starting")

	shell := menu.New(crous.NewService(client), os.Stdin, os.Stdout, c.DefaultRestaurant)
	if err := shell.Run(context.Background()); err != nil {
		log.WithError(err).Error("[main] Reading input failed")
		os.Exit(1)
	}
}
