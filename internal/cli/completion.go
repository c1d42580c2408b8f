package cli

import (
	"fmt"
	"io"
)

// logLevels offered by the completion scripts for -log-level.
const logLevels = "trace debug info warn error disabled"

// GenerateCompletion generates a shell completion script for the harness.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - program: The command name the script completes.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell, program string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, program)
	case "zsh":
		return generateZshCompletion(out, program)
	case "fish":
		return generateFishCompletion(out, program)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

func generateBashCompletion(out io.Writer, program string) error {
	script := `# Bash completion script for %[1]s
# Add this to your ~/.bashrc or ~/.bash_completion

_int2023_golden_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="-h -out -count -seed -timeout -concurrency -verify -quiet -q -no-color -config -log-level -completion"

    case "${prev}" in
        -out)
            COMPREPLY=( $(compgen -d -- "${cur}") )
            return 0
            ;;
        -config)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        -timeout)
            COMPREPLY=( $(compgen -W "30s 1m 2m 5m" -- "${cur}") )
            return 0
            ;;
        -log-level)
            COMPREPLY=( $(compgen -W "%[2]s" -- "${cur}") )
            return 0
            ;;
        -completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _int2023_golden_completions %[1]s
`
	_, err := fmt.Fprintf(out, script, program, logLevels)
	return err
}

func generateZshCompletion(out io.Writer, program string) error {
	script := `#compdef %[1]s

# Zsh completion script for %[1]s
# Add this to your ~/.zshrc or place in $fpath

_int2023_golden() {
    _arguments -s \
        '-h[Show help message]' \
        '-out[Directory the golden file is written to]:directory:_files -/' \
        '-count[Random cases per operation]:count:' \
        '-seed[Seed of the random case generator]:seed:' \
        '-timeout[Maximum execution time]:duration:(30s 1m 2m 5m)' \
        '-concurrency[Maximum concurrent requests]:workers:' \
        '-verify[Replay the cases through the engine]' \
        '(-q -quiet)'{-q,-quiet}'[Quiet mode for scripts]' \
        '-no-color[Disable colored output]' \
        '-config[TOML configuration file]:file:_files' \
        '-log-level[Log level]:level:(%[2]s)' \
        '-completion[Generate completion script]:shell:(bash zsh fish)'
}

_int2023_golden "$@"
`
	_, err := fmt.Fprintf(out, script, program, logLevels)
	return err
}

func generateFishCompletion(out io.Writer, program string) error {
	script := `# Fish completion script for %[1]s
# Add this to ~/.config/fish/completions/%[1]s.fish

complete -c %[1]s -f

complete -c %[1]s -o h -d 'Show help message'
complete -c %[1]s -o out -d 'Directory the golden file is written to' -xa '(__fish_complete_directories)'
complete -c %[1]s -o count -d 'Random cases per operation' -x
complete -c %[1]s -o seed -d 'Seed of the random case generator' -x
complete -c %[1]s -o timeout -d 'Maximum execution time' -xa '30s 1m 2m 5m'
complete -c %[1]s -o concurrency -d 'Maximum concurrent requests' -x
complete -c %[1]s -o verify -d 'Replay the cases through the engine'
complete -c %[1]s -o q -o quiet -d 'Quiet mode for scripts'
complete -c %[1]s -o no-color -d 'Disable colored output'
complete -c %[1]s -o config -d 'TOML configuration file' -rF
complete -c %[1]s -o log-level -d 'Log level' -xa '%[2]s'
complete -c %[1]s -o completion -d 'Generate completion script' -xa 'bash zsh fish'
`
	_, err := fmt.Fprintf(out, script, program, logLevels)
	return err
}
