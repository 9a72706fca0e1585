// Package autoload initializes the global logger from LOG_* environment
// variables as a side effect of import.
package autoload

import (
	configx "github.com/skillradar/agentcore/pkg/config"
	logx "github.com/skillradar/agentcore/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
