package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"pastebin-go/internal/app"
	"pastebin-go/internal/config"
	"pastebin-go/internal/pastebin"
	"pastebin-go/internal/style"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, .env files and environment overrides.
// A missing config file is allowed when the dev key comes from the environment.
func loadConfig() (*config.Config, string, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, "", fmt.Errorf("getting defaults: %w", err)
	}
	configPath := defaults["config_path"]

	if err := config.LoadDotEnv(".env", filepath.Join(defaults["base_dir"], ".env")); err != nil {
		return nil, "", err
	}

	cfg, err := config.ReadFromFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.NewConfig("", defaults["base_dir"])
	} else if err != nil {
		return nil, "", fmt.Errorf("reading config: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)

	return cfg, configPath, nil
}

// newApp reads the config and creates a PastebinApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "new", "delete").
func newApp(cmd *cobra.Command, operation string) (*app.PastebinApp, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openApp(cmd, cfg, operation)
}

// openApp validates cfg and creates a PastebinApp from it.
func openApp(cmd *cobra.Command, cfg *config.Config, operation string) (*app.PastebinApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	a, err := app.NewPastebinApp(cfg, operation, verbose)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// styler returns the report styler for stdout honoring --no-color.
func styler(cmd *cobra.Command) pastebin.Styler {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return style.New(os.Stdout, noColor)
}

var rootCmd = &cobra.Command{
	Use:           "pastebin",
	Short:         "Command-line client for pastebin.com",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		devKey, _ := cmd.Flags().GetString("dev-key")
		if devKey == "" {
			devKey = os.Getenv("PASTEBIN_DEV_KEY")
		}

		cfg := config.NewConfig(devKey, defaults["base_dir"])
		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		if devKey == "" {
			fmt.Println("No dev key set: add dev_key to the config or set PASTEBIN_DEV_KEY.")
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := loadConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Configuration from %s:\n\n", configPath)
		fmt.Print(renderConfig(cfg))
		return nil
	},
}

// login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Obtain a user key",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		save, _ := cmd.Flags().GetBool("save")

		cfg, configPath, err := loadConfig()
		if err != nil {
			return err
		}
		if username == "" {
			username = cfg.Username
		}
		if username == "" {
			return errors.New("username required: pass --username or set PASTEBIN_USERNAME")
		}

		a, err := openApp(cmd, cfg, "login")
		if err != nil {
			return err
		}
		defer a.Close()

		password, err := readSecret("Password: ", "PASTEBIN_PASSWORD")
		if err != nil {
			return err
		}

		userKey, err := a.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		if !save {
			fmt.Println(userKey)
			return nil
		}

		cfg.Username = username
		cfg.UserKey = userKey
		if err := config.Save(configPath, cfg); err != nil {
			return err
		}
		fmt.Printf("User key saved to %s\n", configPath)
		return nil
	},
}

// info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show account details",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "info")
		if err != nil {
			return err
		}
		defer a.Close()

		info, err := a.AccountInfo(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Print(info.Report().Render(styler(cmd)))
		return nil
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pastes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd, "list")
		if err != nil {
			return err
		}
		defer a.Close()

		pastes, err := a.ListPastes(cmd.Context(), limit)
		if err != nil {
			return err
		}

		fmt.Print(pastebin.RenderPasteList(pastes, styler(cmd)))
		return nil
	},
}

// get command
var getCmd = &cobra.Command{
	Use:   "get CODE",
	Short: "Print a paste",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decrypt, _ := cmd.Flags().GetBool("decrypt")

		a, err := newApp(cmd, "get")
		if err != nil {
			return err
		}
		defer a.Close()

		text, err := a.GetPaste(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if decrypt && a.IsEncrypted(text) {
			passphrase, err := readSecret("Passphrase: ", "PASTEBIN_PASSPHRASE")
			if err != nil {
				return err
			}
			text, err = a.DecryptPaste(text, passphrase)
			if err != nil {
				return err
			}
		}

		fmt.Print(text)
		return nil
	},
}

// new command
var newCmd = &cobra.Command{
	Use:   "new [FILE]",
	Short: "Create a paste from a file or standard input",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		title, _ := flags.GetString("title")
		format, _ := flags.GetString("format")
		privacyFlag, _ := flags.GetString("privacy")
		expireFlag, _ := flags.GetString("expire")
		encrypt, _ := flags.GetBool("encrypt")
		replace, _ := flags.GetBool("replace")

		content, name, err := readContent(args, os.Stdin)
		if err != nil {
			return err
		}

		a, err := newApp(cmd, "new")
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := buildNewPaste(a, content, name, title, format, privacyFlag, expireFlag)
		if err != nil {
			return err
		}

		if encrypt {
			passphrase, err := readSecret("Passphrase: ", "PASTEBIN_PASSPHRASE")
			if err != nil {
				return err
			}
			p.Encrypt = true
			p.Passphrase = passphrase
		}

		url, deleted, err := a.CreatePaste(cmd.Context(), p, replace)
		if err != nil {
			return err
		}

		if deleted > 0 {
			fmt.Fprintf(os.Stderr, "Deleted %d existing paste(s) titled %q\n", deleted, p.Title)
		}
		fmt.Println(url)
		return nil
	},
}

// delete command
var deleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Delete a paste",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "delete")
		if err != nil {
			return err
		}
		defer a.Close()

		msg, err := a.DeletePaste(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(msg)
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recorded operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp(cmd, "history")
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, op := range ops {
			fmt.Println(formatOperation(op))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	configInitCmd.Flags().String("dev-key", "", "Developer API key to store")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("username", "u", "", "Account user name")
	loginCmd.Flags().Bool("save", false, "Store the user key in the config file")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntP("limit", "n", 0, "Maximum number of pastes to list (default from config)")
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().Bool("decrypt", false, "Decrypt an encrypted paste")
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringP("title", "t", "", "Paste title (default: file name)")
	newCmd.Flags().StringP("format", "f", "", "Syntax highlighting format (default: from file extension)")
	newCmd.Flags().StringP("privacy", "p", "", "public, unlisted or private (default from config)")
	newCmd.Flags().StringP("expire", "e", "", "Expiry code: N, 10M, 1H, 1D, 1W, 2W, 1M, 6M, 1Y (default from config)")
	newCmd.Flags().Bool("encrypt", false, "Encrypt the paste with a passphrase")
	newCmd.Flags().Bool("replace", false, "Delete your existing pastes with the same title first")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
}
