package registry

// builtinEntry pairs an application key with its definition. A slice (rather
// than a map) preserves the enumeration order of the built-in table.
type builtinEntry struct {
	key string
	app AppConfig
}

// builtinApps returns the built-in application table. Keys are lowercase;
// lookups are case-insensitive. Paths are macOS-leaning where an application
// is macOS-only (plist preferences, ~/Library), and XDG-style otherwise.
func builtinApps() []builtinEntry {
	return []builtinEntry{
		{"vscode", AppConfig{
			DisplayName: "Visual Studio Code",
			BundleID:    "com.microsoft.VSCode",
			Configs: []ConfigLocation{
				{Path: "~/Library/Application Support/Code/User/settings.json", Type: LocationFile, Format: FormatJSON, Description: "User settings"},
				{Path: "~/Library/Application Support/Code/User/keybindings.json", Type: LocationFile, Format: FormatJSON, Description: "Keyboard shortcuts"},
				{Path: "~/.config/Code/User/settings.json", Type: LocationFile, Format: FormatJSON, Description: "User settings (Linux)"},
				{Path: "~/.vscode/extensions", Type: LocationDirectory, Format: FormatDirectory, Description: "Installed extensions"},
			},
		}},
		{"cursor", AppConfig{
			DisplayName: "Cursor",
			BundleID:    "com.todesktop.230313mzl4w4u92",
			Configs: []ConfigLocation{
				{Path: "~/Library/Application Support/Cursor/User/settings.json", Type: LocationFile, Format: FormatJSON, Description: "User settings"},
				{Path: "~/.cursor/mcp.json", Type: LocationFile, Format: FormatJSON, Description: "MCP server definitions"},
				{Path: "~/.cursor/extensions", Type: LocationDirectory, Format: FormatDirectory, Description: "Installed extensions"},
			},
		}},
		{"claude", AppConfig{
			DisplayName: "Claude Desktop",
			BundleID:    "com.anthropic.claudefordesktop",
			Configs: []ConfigLocation{
				{Path: "~/Library/Application Support/Claude/claude_desktop_config.json", Type: LocationFile, Format: FormatJSON, Description: "Desktop app configuration"},
				{Path: "~/.claude/settings.json", Type: LocationFile, Format: FormatJSON, Description: "CLI settings"},
			},
		}},
		{"git", AppConfig{
			DisplayName: "Git",
			Configs: []ConfigLocation{
				{Path: "~/.gitconfig", Type: LocationFile, Format: FormatText, Description: "Global configuration"},
				{Path: "~/.gitignore_global", Type: LocationFile, Format: FormatText, Description: "Global ignore patterns"},
			},
		}},
		{"zsh", AppConfig{
			DisplayName: "Zsh",
			Configs: []ConfigLocation{
				{Path: "~/.zshrc", Type: LocationFile, Format: FormatText, Description: "Interactive shell configuration"},
				{Path: "~/.zshenv", Type: LocationFile, Format: FormatText, Description: "Environment variables"},
				{Path: "~/.zprofile", Type: LocationFile, Format: FormatText, Description: "Login shell configuration"},
			},
		}},
		{"bash", AppConfig{
			DisplayName: "Bash",
			Configs: []ConfigLocation{
				{Path: "~/.bashrc", Type: LocationFile, Format: FormatText, Description: "Interactive shell configuration"},
				{Path: "~/.bash_profile", Type: LocationFile, Format: FormatText, Description: "Login shell configuration"},
			},
		}},
		{"vim", AppConfig{
			DisplayName: "Vim",
			Configs: []ConfigLocation{
				{Path: "~/.vimrc", Type: LocationFile, Format: FormatText, Description: "Editor configuration"},
				{Path: "~/.vim", Type: LocationDirectory, Format: FormatDirectory, Description: "Runtime directory"},
			},
		}},
		{"neovim", AppConfig{
			DisplayName: "Neovim",
			Configs: []ConfigLocation{
				{Path: "~/.config/nvim/init.lua", Type: LocationFile, Format: FormatText, Description: "Lua configuration"},
				{Path: "~/.config/nvim/init.vim", Type: LocationFile, Format: FormatText, Description: "Vimscript configuration"},
				{Path: "~/.config/nvim", Type: LocationDirectory, Format: FormatDirectory, Description: "Configuration directory"},
			},
		}},
		{"tmux", AppConfig{
			DisplayName: "tmux",
			Configs: []ConfigLocation{
				{Path: "~/.tmux.conf", Type: LocationFile, Format: FormatText, Description: "Terminal multiplexer configuration"},
				{Path: "~/.config/tmux/tmux.conf", Type: LocationFile, Format: FormatText, Description: "XDG-style configuration"},
			},
		}},
		{"ssh", AppConfig{
			DisplayName: "OpenSSH",
			Configs: []ConfigLocation{
				{Path: "~/.ssh/config", Type: LocationFile, Format: FormatText, Description: "Client configuration"},
				{Path: "~/.ssh", Type: LocationDirectory, Format: FormatDirectory, Description: "Keys and known hosts"},
			},
		}},
		{"npm", AppConfig{
			DisplayName: "npm",
			Configs: []ConfigLocation{
				{Path: "~/.npmrc", Type: LocationFile, Format: FormatText, Description: "Package manager configuration"},
			},
		}},
		{"docker", AppConfig{
			DisplayName: "Docker",
			Configs: []ConfigLocation{
				{Path: "~/.docker/config.json", Type: LocationFile, Format: FormatJSON, Description: "Client configuration"},
				{Path: "~/.docker/daemon.json", Type: LocationFile, Format: FormatJSON, Description: "Daemon configuration"},
			},
		}},
		{"kubectl", AppConfig{
			DisplayName: "Kubernetes CLI",
			Configs: []ConfigLocation{
				{Path: "~/.kube/config", Type: LocationFile, Format: FormatYAML, Description: "Cluster access configuration"},
			},
		}},
		{"iterm2", AppConfig{
			DisplayName: "iTerm2",
			BundleID:    "com.googlecode.iterm2",
			Configs: []ConfigLocation{
				{Path: "~/Library/Preferences/com.googlecode.iterm2.plist", Type: LocationFile, Format: FormatPlist, Description: "Preferences"},
			},
		}},
		{"rectangle", AppConfig{
			DisplayName: "Rectangle",
			BundleID:    "com.knollsoft.Rectangle",
			Configs: []ConfigLocation{
				{Path: "~/Library/Preferences/com.knollsoft.Rectangle.plist", Type: LocationFile, Format: FormatPlist, Description: "Window management preferences"},
			},
		}},
		{"karabiner", AppConfig{
			DisplayName: "Karabiner-Elements",
			BundleID:    "org.pqrs.Karabiner-Elements.Preferences",
			Configs: []ConfigLocation{
				{Path: "~/.config/karabiner/karabiner.json", Type: LocationFile, Format: FormatJSON, Description: "Key remapping configuration"},
			},
		}},
		{"starship", AppConfig{
			DisplayName: "Starship",
			Configs: []ConfigLocation{
				{Path: "~/.config/starship.toml", Type: LocationFile, Format: FormatTOML, Description: "Prompt configuration"},
			},
		}},
		{"alacritty", AppConfig{
			DisplayName: "Alacritty",
			BundleID:    "org.alacritty",
			Configs: []ConfigLocation{
				{Path: "~/.config/alacritty/alacritty.toml", Type: LocationFile, Format: FormatTOML, Description: "Terminal configuration"},
				{Path: "~/.config/alacritty/alacritty.yml", Type: LocationFile, Format: FormatYAML, Description: "Legacy YAML configuration"},
			},
		}},
		{"ghostty", AppConfig{
			DisplayName: "Ghostty",
			BundleID:    "com.mitchellh.ghostty",
			Configs: []ConfigLocation{
				{Path: "~/.config/ghostty/config", Type: LocationFile, Format: FormatText, Description: "Terminal configuration"},
			},
		}},
	}
}
