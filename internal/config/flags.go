package config

import "flag"

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-password-key credential key file path
//	-article-key content key file path
//	-backup-dir backup directory
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	return parseFlagSet(flag.CommandLine, nil)
}

// parseFlagSet registers and parses the configuration flags on the given
// flag set. Split out from [ParseFlags] so tests can parse an isolated flag
// set instead of the process arguments.
func parseFlagSet(fs *flag.FlagSet, args []string) *StructuredConfig {
	var passwordKeyFile string
	var articleKeyFile string
	var backupDir string
	var jsonConfigPath string

	fs.StringVar(&passwordKeyFile, "password-key", "", "Credential key file path")
	fs.StringVar(&articleKeyFile, "article-key", "", "Content key file path")
	fs.StringVar(&backupDir, "backup-dir", "", "Backup directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// flag.CommandLine parses os.Args[1:] itself; explicit args are only
	// supplied by tests.
	if fs == flag.CommandLine {
		flag.Parse()
	} else {
		_ = fs.Parse(args)
	}

	return &StructuredConfig{
		Keys: Keys{
			PasswordKeyFile: passwordKeyFile,
			ArticleKeyFile:  articleKeyFile,
		},
		Backup: Backup{
			Dir: backupDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
