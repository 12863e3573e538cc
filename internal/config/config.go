// Package config defines the manager's process-wide, init-only
// configuration knobs (spec.md §6), each overridable by CLI flag or
// environment variable.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the manager's init-only configuration.
type Config struct {
	NodeName      string
	NodeAddress   string
	CheckpointDir string
	UnixSocket    string
	GRPCPort      int
	LogLevel      string
	Namespace     string
}

// BindFlags registers this package's flags on fs and binds each one to its
// environment-variable equivalent via viper.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) {
	fs.String("node-name", "localhost", "logical name of this node")
	fs.String("node-address", "", "advertised host of this node's peer channel (port comes from grpc-port; looked up from the Node object when empty)")
	fs.String("checkpoint-dir", "/var/lib/shiftpod/checkpoints", "directory for received checkpoint files")
	fs.String("unix-socket", "/var/run/shiftpod/manager.sock", "local shim control-endpoint socket path")
	fs.Int("grpc-port", 9090, "peer channel TCP port")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("namespace", "default", "namespace the ContainerMigration resources live in")

	_ = v.BindPFlag("node_name", fs.Lookup("node-name"))
	_ = v.BindPFlag("node_address", fs.Lookup("node-address"))
	_ = v.BindPFlag("checkpoint_dir", fs.Lookup("checkpoint-dir"))
	_ = v.BindPFlag("unix_socket", fs.Lookup("unix-socket"))
	_ = v.BindPFlag("grpc_port", fs.Lookup("grpc-port"))
	_ = v.BindPFlag("log_level", fs.Lookup("log-level"))
	_ = v.BindPFlag("namespace", fs.Lookup("namespace"))
}

// Load reads bound flags/environment into a Config. v must already have had
// BindFlags applied and fs.Parse called.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("SHIFTPOD")
	v.AutomaticEnv()

	cfg := Config{
		NodeName:      v.GetString("node_name"),
		NodeAddress:   v.GetString("node_address"),
		CheckpointDir: v.GetString("checkpoint_dir"),
		UnixSocket:    v.GetString("unix_socket"),
		GRPCPort:      v.GetInt("grpc_port"),
		LogLevel:      v.GetString("log_level"),
		Namespace:     v.GetString("namespace"),
	}

	if cfg.NodeName == "" {
		return Config{}, fmt.Errorf("node-name must not be empty")
	}
	if cfg.GRPCPort <= 0 || cfg.GRPCPort > 65535 {
		return Config{}, fmt.Errorf("grpc-port %d out of range", cfg.GRPCPort)
	}

	return cfg, nil
}

// PeerAddress is the host:port this node advertises for its peer channel,
// stored verbatim into ContainerMigrationContainer.ImageServer so that
// pulling peers never need to guess the port (spec.md §9).
func (c Config) PeerAddress() string {
	return fmt.Sprintf("%s:%d", c.NodeAddress, c.GRPCPort)
}
