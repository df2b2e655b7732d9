package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/extrato-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$$$             /$$                          /$$
        | $$_____/            | $$                         | $$
        | $$       /$$   /$$ /$$$$$$    /$$$$$$  /$$$$$$  /$$$$$$    /$$$$$$
        | $$$$$   |  $$ /$$/|_  $$_/   /$$__  $$|____  $$|_  $$_/   /$$__  $$
        | $$__/    \  $$$$/   | $$    | $$  \__/ /$$$$$$$  | $$    | $$  \ $$
        | $$        >$$  $$   | $$ /$$| $$      /$$__  $$  | $$ /$$| $$  | $$
        | $$$$$$$$ /$$/\  $$  |  $$$$/| $$     |  $$$$$$$  |  $$$$/|  $$$$$$/
        |________/|__/  \__/   \___/  |__/      \_______/   \___/   \______/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Extrato Dashboard CLI (v%s)", formattedVersion)))
}
