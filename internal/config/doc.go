// Package config holds the release configuration.
//
// A [Config] is built once per invocation: [Default] supplies the constants
// for the packaged service, an optional YAML file overlays them, and every
// path is resolved against the repository root before the pipeline starts.
// The value is passed explicitly to each component; nothing reads it from
// global state, so tests can point a pipeline at a temporary repository.
//
// A repository config file only needs the keys it changes:
//
//	binary: my-service
//	companions: [my-service.service]
//	archive:
//	  versioned: false
//	volumes:
//	  - name: my-cargo-registry
//	    target: /home/rust/.cargo/registry
//
// Example usage:
//
//	cfg, err := config.Load(root, "")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.BinaryPath())
package config
