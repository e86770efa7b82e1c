package main

import (
	"flag"
	"io"
	"os"

	"pokerodds/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var out = flag.String("out", "", "write the config to this file instead of stdout")

func main() {
	flag.Parse()

	w := io.Writer(os.Stdout)
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			logrus.WithError(err).Fatal("could not create config file")
		}
		defer file.Close()

		w = file
	}

	if err := writeDefaultConfig(w); err != nil {
		logrus.WithError(err).Fatal("could not write config")
	}
}

// writeDefaultConfig writes a config file that loads back to the defaults
func writeDefaultConfig(w io.Writer) error {
	if _, err := io.WriteString(w, "# pokerodds configuration, every value can be overridden with POKERODDS_* variables\n"); err != nil {
		return err
	}

	return yaml.NewEncoder(w).Encode(config.DefaultConfig())
}
