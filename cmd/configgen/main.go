package main

import (
	"flag"
	"log"

	"github.com/danmuck/cardctl/internal/config"
)

func main() {
	output := flag.String("output", "cardctl.toml", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "cardctl.toml", "config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		if _, err := config.LoadServerConfig(*input); err != nil {
			log.Fatal(err)
		}
		log.Printf("config valid: %s", *input)
		return
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("config written: %s", *output)
}
