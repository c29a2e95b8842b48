// Command convert-code-refs links plain-text code references in HTML files.
package main

import (
	"errors"
	"fmt"
	"os"

	configfile "github.com/custodia-labs/convert-code-refs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/convert-code-refs/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/convert-code-refs/internal/adapters/driving/cli"
	"github.com/custodia-labs/convert-code-refs/internal/coderefs"
	"github.com/custodia-labs/convert-code-refs/internal/core/domain"
	"github.com/custodia-labs/convert-code-refs/internal/core/ports/driven"
	"github.com/custodia-labs/convert-code-refs/internal/core/services"
)

func main() {
	cli.Configure(cli.Config{
		ConvertService: services.NewConvertService(file.NewDocumentStore(), coderefs.New()),
		LoadConfig: func(path string) (driven.ConfigStore, error) {
			return configfile.NewConfigStore(path)
		},
	})

	if err := cli.Execute(); err != nil {
		// Usage has already been printed for a bare invocation
		if !errors.Is(err, domain.ErrNoFiles) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
