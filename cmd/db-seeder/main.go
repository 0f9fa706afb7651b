package main

import (
	"fmt"
	"os"

	"github.com/psds-microservice/db-seeder/cmd"
	apperrors "github.com/psds-microservice/db-seeder/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !cmd.Reported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(apperrors.ExitCode(err))
	}
}
