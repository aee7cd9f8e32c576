package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ethan-wit/attachfetch/internal/config"
	"github.com/ethan-wit/attachfetch/internal/imap"
	"golang.org/x/term"
)

func (c *ConfigInitCmd) Run(ctx *Context) error {
	fmt.Println("attachfetch Configuration Wizard")
	fmt.Println("================================")
	fmt.Println()
	fmt.Println("This wizard will help you configure the IMAP account attachfetch reads from.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	cfg := config.DefaultConfig()

	// Email
	fmt.Printf("Email address: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email address is required")
	}
	cfg.Account.Email = email

	// IMAP Host
	fmt.Printf("IMAP host: ")
	host, _ := reader.ReadString('\n')
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("IMAP host is required")
	}
	cfg.Account.Host = host

	// IMAP Port
	fmt.Printf("IMAP port [%d]: ", config.DefaultIMAPPort)
	portStr, _ := reader.ReadString('\n')
	portStr = strings.TrimSpace(portStr)
	if portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid IMAP port: %s", portStr)
		}
		cfg.Account.Port = port
	}

	// Default folder path
	fmt.Printf("Default folder [%s]: ", cfg.Defaults.Folder)
	folder, _ := reader.ReadString('\n')
	folder = strings.TrimSpace(folder)
	if folder != "" {
		cfg.Defaults.Folder = folder
	}

	// Password
	fmt.Println()
	fmt.Print("IMAP password: ")

	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := string(passwordBytes)
	if password == "" {
		return fmt.Errorf("password is required")
	}

	// Save config
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if err := cfg.Save(""); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	// Store password in keyring
	if err := cfg.SetPassword(password); err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	fmt.Println("Password stored securely in system keyring.")
	fmt.Println()
	fmt.Println("Test your connection with: attachfetch config validate")

	return nil
}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	if ctx.Config == nil {
		return fmt.Errorf("no configuration found - run 'attachfetch config init' first")
	}

	if ctx.Formatter.JSON {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"account": map[string]interface{}{
				"host":     ctx.Config.Account.Host,
				"port":     ctx.Config.Account.Port,
				"email":    ctx.Config.Account.Email,
				"insecure": ctx.Config.Account.Insecure,
			},
			"defaults": map[string]interface{}{
				"folder": ctx.Config.Defaults.Folder,
			},
		})
	}

	configPath, _ := config.ConfigPath()
	fmt.Printf("Configuration file: %s\n\n", configPath)

	fmt.Println("Account Settings:")
	fmt.Printf("  IMAP Host: %s\n", ctx.Config.Account.Host)
	fmt.Printf("  IMAP Port: %d\n", ctx.Config.Account.Port)
	fmt.Printf("  Email:     %s\n", ctx.Config.Account.Email)
	fmt.Printf("  Insecure:  %v\n", ctx.Config.Account.Insecure)

	fmt.Println()
	fmt.Println("Defaults:")
	fmt.Printf("  Folder: %s\n", ctx.Config.Defaults.Folder)

	// Check if password is set
	_, err := ctx.Config.GetPassword()
	fmt.Println()
	if err != nil {
		fmt.Println("Password: not set (run 'attachfetch config init' to set)")
	} else {
		fmt.Println("Password: ********** (stored in keyring)")
	}

	return nil
}

func (c *ConfigSetCmd) Run(ctx *Context) error {
	if ctx.Config == nil {
		ctx.Config = config.DefaultConfig()
	}

	parts := strings.Split(c.Key, ".")
	if len(parts) != 2 {
		return fmt.Errorf("invalid key format - use section.key (e.g., account.host, defaults.folder)")
	}

	section, key := parts[0], parts[1]

	switch section {
	case "account":
		switch key {
		case "host":
			ctx.Config.Account.Host = c.Value
		case "port":
			port, err := strconv.Atoi(c.Value)
			if err != nil {
				return fmt.Errorf("invalid port value: %s", c.Value)
			}
			ctx.Config.Account.Port = port
		case "email":
			ctx.Config.Account.Email = c.Value
		case "insecure":
			insecure, err := strconv.ParseBool(c.Value)
			if err != nil {
				return fmt.Errorf("invalid insecure value: %s", c.Value)
			}
			ctx.Config.Account.Insecure = insecure
		default:
			return fmt.Errorf("unknown account key: %s", key)
		}
	case "defaults":
		switch key {
		case "folder":
			ctx.Config.Defaults.Folder = c.Value
		default:
			return fmt.Errorf("unknown defaults key: %s", key)
		}
	default:
		return fmt.Errorf("unknown section: %s (use 'account' or 'defaults')", section)
	}

	if err := ctx.Config.Save(ctx.Globals.Config); err != nil {
		return err
	}

	ctx.Formatter.PrintSuccess(fmt.Sprintf("Set %s = %s", c.Key, c.Value))
	return nil
}

func (c *ConfigValidateCmd) Run(ctx *Context) error {
	if ctx.Config == nil {
		return fmt.Errorf("no configuration found - run 'attachfetch config init' first")
	}

	client := imap.NewClient(ctx.Config)
	if err := client.Connect(); err != nil {
		if ctx.Formatter.JSON {
			return ctx.Formatter.PrintJSON(map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer client.Close()

	if ctx.Formatter.JSON {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"success": true,
			"message": "Successfully connected and authenticated to the IMAP server",
		})
	}

	fmt.Println("Connection successful.")
	return nil
}
