package main

import (
	"fmt"
	"io"

	"github.com/gomidi/connect"
	driver "github.com/minikomi/rtmididrv"

	"github.com/minikomi/pianolight/internal/midiin"
)

func openDriver() (connect.Driver, error) {
	drv, err := driver.New()
	if err != nil {
		return nil, fmt.Errorf("no midi input available: %w", err)
	}
	return drv, nil
}

func listPorts(w io.Writer) error {
	drv, err := openDriver()
	if err != nil {
		return err
	}
	defer drv.Close()

	ins, err := drv.Ins()
	if err != nil {
		return fmt.Errorf("list midi inputs: %w", err)
	}
	midiin.PrintInPorts(w, ins)
	return nil
}
