package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/rewards-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// BrightCyan destaca os títulos das tabelas.
var BrightCyan = color.New(color.FgCyan, color.Bold).SprintFunc()

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com o total informado.
func (c *Console) ProgressWithTotal(title string, total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(true).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	title   string
	columns []string
	rows    [][]string
	footer  string
}

// CreateTable cria uma nova tabela com o título informado.
func (c *Console) CreateTable(title string) types.TableInterface {
	return &Table{
		title:   title,
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// SetFooter define o texto exibido abaixo da tabela (paginação, filtros).
func (t *Table) SetFooter(text string) {
	t.footer = text
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()

	var b strings.Builder
	if t.title != "" {
		b.WriteString(BrightCyan(t.title))
		b.WriteString("\n")
	}
	b.WriteString(renderedTable)
	if t.footer != "" {
		b.WriteString("\n")
		b.WriteString(t.footer)
	}
	b.WriteString("\n")
	return b.String()
}

// DisplayPanel exibe um bloco de texto com borda e título.
func (c *Console) DisplayPanel(title string, lines []string) {
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(strings.Join(lines, "\n"))
	fmt.Println("\n" + panel)
}

// DisplayTrendBars exibe gráficos de barras com os pontos concedidos por mês.
func (c *Console) DisplayTrendBars(monthlyPoints []types.MonthlyPoints) {
	maxPoints := 0
	for _, mp := range monthlyPoints {
		if mp.Points > maxPoints {
			maxPoints = mp.Points
		}
	}

	if maxPoints == 0 {
		pterm.Warning.Println("No reward points were earned in this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Points", "", "MoM Change"},
	}

	var prev *int

	for _, mp := range monthlyPoints {
		barLength := mp.Points * 40 / maxPoints
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prev != nil {
			switch {
			case *prev == 0 && mp.Points == 0:
				change = pterm.FgYellow.Sprint("0%")
				barColor = pterm.FgYellow.Sprint(bar)
			case *prev == 0:
				change = pterm.FgGreen.Sprint("N/A")
				barColor = pterm.FgGreen.Sprint(bar)
			default:
				changePercent := float64(mp.Points-*prev) / float64(*prev) * 100.0
				switch {
				case changePercent == 0:
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				case changePercent > 999:
					change = pterm.FgGreen.Sprint(">+999%")
					barColor = pterm.FgGreen.Sprint(bar)
				case changePercent > 0:
					// mais pontos é bom: verde
					change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				default:
					change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			mp.Month,
			fmt.Sprintf("%d", mp.Points),
			barColor,
			change,
		})

		current := mp.Points
		prev = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Reward Points Trend").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
