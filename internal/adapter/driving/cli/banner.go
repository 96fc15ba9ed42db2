package cli

import (
	"fmt"

	"github.com/diillson/rewards-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
        ██████╗ ███████╗██╗    ██╗ █████╗ ██████╗ ██████╗ ███████╗
        ██╔══██╗██╔════╝██║    ██║██╔══██╗██╔══██╗██╔══██╗██╔════╝
        ██████╔╝█████╗  ██║ █╗ ██║███████║██████╔╝██║  ██║███████╗
        ██╔══██╗██╔══╝  ██║███╗██║██╔══██║██╔══██╗██║  ██║╚════██║
        ██║  ██║███████╗╚███╔███╔╝██║  ██║██║  ██║██████╔╝███████║
        ╚═╝  ╚═╝╚══════╝ ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚══════╝
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Customer Rewards Dashboard CLI (v%s)", formattedVersion)))
}
