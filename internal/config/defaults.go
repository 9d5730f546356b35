package config

const (
	defaultImage      = "jtc-image"
	defaultDockerfile = "tools/Dockerfile"
	defaultManifest   = "Cargo.toml"
	defaultOutputDir  = "release"
	defaultBinary     = "journald-to-cloudwatch"
	defaultUnit       = "journald-to-cloudwatch.service"
	defaultRuntime    = "docker"
	defaultOutput     = "/host"
)

// Returns the built-in configuration for the repository at root.
//
// The values describe the journald-to-cloudwatch build: a Rust toolchain
// image whose cargo git, registry and target directories live in named
// volumes, writing the binary to /host, which is the repository's release
// directory on the host. Paths are left relative; [Load] resolves them.
func Default(root string) *Config {
	return &Config{
		Root:       root,
		Image:      defaultImage,
		Dockerfile: defaultDockerfile,
		Manifest:   defaultManifest,
		OutputDir:  defaultOutputDir,
		Binary:     defaultBinary,
		Companions: []string{defaultUnit},
		Runtime: Runtime{
			Command: defaultRuntime,
			Sudo:    true,
		},
		Volumes: []Volume{
			{Name: "jtc-cargo-git-volume", Target: "/home/rust/.cargo/git"},
			{Name: "jtc-cargo-reg-volume", Target: "/home/rust/.cargo/registry"},
			{Name: "jtc-cargo-tgt-volume", Target: "/home/rust/src/target"},
		},
		Output: Output{
			Target:  defaultOutput,
			Options: []string{"z"},
		},
		Ownership: Ownership{Sudo: true},
		Archive: Archive{
			Versioned: true,
			Format:    FormatTar,
		},
	}
}
