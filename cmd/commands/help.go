package commands

import "fmt"

func HandleHelp(_ []string) {
	fmt.Println(`Usage: citystore <command> [arguments]

Commands:
  run <config.yml>   start the city record service
  version            print the version
  help               show this help`) //nolint
}
