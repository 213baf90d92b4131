package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dassigner/studio/src/dassigner/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_infoKeyPID         = "pid"
	_infoKeyStorePath   = "store-path"
	_infoKeyEnvironment = "environment"

	_configKeyStorePath   = "store.path"
	_configKeyEnvironment = "environment"
)

// outputDaemonInfo records the process id, environment and store location next to the JSON-RPC address,
// so tools can tell which daemon owns the store lock.
func outputDaemonInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	if err := infofile.UpdateField(_infoKeyPID, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyPID, err)
	}

	var env string
	if err := cfg.Get(_configKeyEnvironment).Populate(&env); err != nil {
		return fmt.Errorf("loading environment: %v", err)
	}
	if env != "" {
		if err := infofile.UpdateField(_infoKeyEnvironment, env); err != nil {
			return fmt.Errorf("outputting %q to info file: %w", _infoKeyEnvironment, err)
		}
	}

	var storePath string
	if err := cfg.Get(_configKeyStorePath).Populate(&storePath); err != nil {
		return fmt.Errorf("loading store config: %v", err)
	}
	if storePath == "" {
		return nil
	}
	if err := infofile.UpdateField(_infoKeyStorePath, storePath); err != nil {
		return fmt.Errorf("outputting %q to info file: %w", _infoKeyStorePath, err)
	}
	return nil
}
