/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package main runs the ICC profile inspection HTTP demo service.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mechiko/go-iccprof/internal/iccserver"
	"github.com/mechiko/go-iccprof/pkg/icc/config"
)

func main() {
	host := flag.String("host", "127.0.0.1", "listen host")
	port := flag.String("port", "8888", "listen port")
	configPath := flag.String("config", "", "path to a fitter tuning YAML file")
	flag.Parse()

	fitCfg := config.Default()
	if *configPath != "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "iccinspect: %v\n", err)
			os.Exit(1)
		}
		fitCfg = cfg
	}

	s, err := iccserver.New(*host, *port, fitCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "iccinspect: %v\n", err)
		os.Exit(1)
	}

	s.Start()
	fmt.Printf("iccinspect listening on %s:%s\n", *host, *port)
	if err := <-s.Notify(); err != nil {
		fmt.Fprintf(os.Stderr, "iccinspect: %v\n", err)
		os.Exit(1)
	}
}
