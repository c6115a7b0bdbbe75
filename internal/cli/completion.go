package cli

import (
	"fmt"
	"strings"

	"github.com/rauta/devtask/internal/errors"
	"github.com/rauta/devtask/internal/task"
)

// commandDescs maps completable commands to their short descriptions.
// Built-in tasks come first so the most common completions lead the list.
var commandDescs = []struct {
	name string
	desc string
}{
	{"release", "Build in release mode"},
	{"run", "Build and run (release mode)"},
	{"debug", "Build and run with backtraces and debug logging"},
	{"check", "Type-check the crate entry point without building"},
	{"tasks", "List registered tasks"},
	{"config", "Validate project configuration"},
	{"github", "Generate GitHub Actions CI workflow"},
	{"completion", "Generate shell completion script"},
	{"version", "Show version information"},
	{"help", "Show help"},
}

// completionFlags are the long flags offered by completion scripts.
var completionFlags = []string{"--quiet", "--verbose", "--dry-run", "--force", "--help", "--version"}

// cmdCompletion generates a completion script for the requested shell.
// The optional --alias flag renames the completed command, for users who
// invoke the harness through a shell alias.
func cmdCompletion(args []string) int {
	if len(args) == 0 {
		out.ErrorPrefix("completion requires a shell argument (%s)", joinShells())
		return errors.ExitConfigError
	}

	shell := args[0]
	cmdName := "devtask"
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--alias":
			if i+1 >= len(rest) {
				out.ErrorPrefix("--alias requires a value")
				return errors.ExitConfigError
			}
			cmdName = rest[i+1]
			i++
		default:
			out.ErrorPrefix("unexpected argument %q", rest[i])
			return errors.ExitConfigError
		}
	}

	script, err := generateCompletion(shell, cmdName)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.Print("%s", script)
	return errors.ExitSuccess
}

func generateCompletion(shell, cmdName string) (string, error) {
	switch shell {
	case "bash":
		return generateBashCompletion(cmdName), nil
	case "zsh":
		return generateZshCompletion(cmdName), nil
	case "fish":
		return generateFishCompletion(cmdName), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", shell, joinShells())
	}
}

func commandWords() string {
	names := make([]string, len(commandDescs))
	for i, c := range commandDescs {
		names[i] = c.name
	}
	return strings.Join(names, " ")
}

func generateBashCompletion(cmdName string) string {
	funcName := fmt.Sprintf("_%s_completions", cmdName)

	return fmt.Sprintf(`# bash completion for %[1]s
%[2]s() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    local commands="%[3]s"
    local flags="%[4]s"

    case "${prev}" in
        config)
            COMPREPLY=($(compgen -W "validate" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "%[5]s" -- "${cur}"))
            return
            ;;
    esac

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        # Include project-defined tasks when inside a project
        local tasks
        tasks=$(%[1]s tasks 2>/dev/null | awk 'NR>1 {print $1}')
        COMPREPLY=($(compgen -W "${commands} ${tasks} ${flags}" -- "${cur}"))
        return
    fi

    COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
}
complete -F %[2]s %[1]s
`, cmdName, funcName, commandWords(), strings.Join(completionFlags, " "), strings.Join(knownShells, " "))
}

func generateZshCompletion(cmdName string) string {
	var commands strings.Builder
	for _, c := range commandDescs {
		desc := strings.ReplaceAll(c.desc, ":", `\:`)
		fmt.Fprintf(&commands, "        '%s:%s'\n", c.name, desc)
	}

	funcName := fmt.Sprintf("_%s", cmdName)

	return fmt.Sprintf(`#compdef %[1]s
# zsh completion for %[1]s
%[2]s() {
    local -a commands
    commands=(
%[3]s    )

    if (( CURRENT == 2 )); then
        local -a tasks
        tasks=(${(f)"$(%[1]s tasks 2>/dev/null | awk 'NR>1 {print $1}')"})
        _describe 'command' commands
        (( ${#tasks} )) && _describe 'task' tasks
        return
    fi

    case "${words[2]}" in
        config)
            _values 'subcommand' validate
            ;;
        completion)
            _values 'shell' %[4]s
            ;;
        *)
            _arguments %[5]s
            ;;
    esac
}
compdef %[2]s %[1]s
`, cmdName, funcName, commands.String(), strings.Join(knownShells, " "), zshFlagArgs())
}

func zshFlagArgs() string {
	args := make([]string, len(completionFlags))
	for i, f := range completionFlags {
		args[i] = fmt.Sprintf("'%s'", f)
	}
	return strings.Join(args, " ")
}

func generateFishCompletion(cmdName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# fish completion for %s\n", cmdName)
	fmt.Fprintf(&b, "complete -c %s -f\n\n", cmdName)

	for _, c := range commandDescs {
		fmt.Fprintf(&b, "complete -c %s -n __fish_use_subcommand -a %s -d %q\n", cmdName, c.name, c.desc)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from config' -a validate -d 'Validate .devtask/tasks.json'\n", cmdName)
	fmt.Fprintf(&b, "complete -c %s -n '__fish_seen_subcommand_from completion' -a '%s' -d 'Target shell'\n", cmdName, strings.Join(knownShells, " "))

	b.WriteString("\n")
	for _, f := range completionFlags {
		fmt.Fprintf(&b, "complete -c %s -l %s\n", cmdName, strings.TrimPrefix(f, "--"))
	}

	return b.String()
}

// completionCoversBuiltins reports whether every built-in task name appears in
// the static command list. Kept as a function so the invariant is testable.
func completionCoversBuiltins() bool {
	listed := make(map[string]bool, len(commandDescs))
	for _, c := range commandDescs {
		listed[c.name] = true
	}
	for _, name := range task.BuiltinNames() {
		if !listed[name] {
			return false
		}
	}
	return true
}
