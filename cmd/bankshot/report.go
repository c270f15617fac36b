package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gehtsoft-usa/go_bankshot"
	"github.com/gehtsoft-usa/go_bankshot/bmath/unit"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)

type collisionReport struct {
	Barrier string  `json:"barrier"`
	Step    int     `json:"step"`
	X       float64 `json:"x_m"`
	Y       float64 `json:"y_m"`
}

type methodReport struct {
	Method          string            `json:"method"`
	Status          string            `json:"status"`
	AngleDegrees    float64           `json:"angle_deg"`
	AngleRadians    float64           `json:"angle_rad"`
	BracketLow      float64           `json:"bracket_low_deg"`
	BracketHigh     float64           `json:"bracket_high_deg"`
	Iterations      int               `json:"iterations"`
	LandingDistance float64           `json:"landing_m"`
	LandingError    float64           `json:"landing_error_m"`
	FlightTime      float64           `json:"flight_time_s"`
	ImpactSpeed     float64           `json:"impact_speed_mps"`
	ImpactEnergy    float64           `json:"impact_energy_j"`
	Apex            float64           `json:"apex_m"`
	Collisions      []collisionReport `json:"collisions"`
	ErrorTrace      []float64         `json:"error_trace"`
}

func newMethodReport(method string, config go_bankshot.PhysicalConfig, result go_bankshot.SolverResult) methodReport {
	shot := result.Shot()
	r := methodReport{
		Method:          method,
		Status:          result.Status().String(),
		AngleDegrees:    result.Angle().In(unit.AngularDegree),
		AngleRadians:    result.Angle().In(unit.AngularRadian),
		BracketLow:      result.Bracket().Low.In(unit.AngularDegree),
		BracketHigh:     result.Bracket().High.In(unit.AngularDegree),
		Iterations:      result.Iterations(),
		LandingDistance: shot.Landing().X,
		LandingError:    shot.Landing().X - config.TargetDistance().In(unit.DistanceMeter),
		FlightTime:      shot.Time().TotalSeconds(),
		ImpactSpeed:     shot.ImpactSpeed().In(unit.VelocityMPS),
		ImpactEnergy:    shot.Energy().In(unit.EnergyJoule),
		Apex:            shot.Apex().Y,
		Collisions:      make([]collisionReport, 0, len(shot.Collisions())),
		ErrorTrace:      result.ErrorTrace(),
	}
	for _, c := range shot.Collisions() {
		r.Collisions = append(r.Collisions, collisionReport{Barrier: c.Barrier, Step: c.Step, X: c.Point.X, Y: c.Point.Y})
	}
	return r
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func renderMethod(r methodReport) string {
	status := okStyle.Render(r.Status)
	if r.Status != go_bankshot.StatusConverged.String() {
		status = warnStyle.Render(r.Status)
	}

	rows := []string{
		titleStyle.Render(strings.ToUpper(r.Method)) + "  " + status,
		row("angle", fmt.Sprintf("%.4f° (%.6f rad)", r.AngleDegrees, r.AngleRadians)),
		row("bracket", fmt.Sprintf("[%.2f°, %.2f°]", r.BracketLow, r.BracketHigh)),
		row("iterations", fmt.Sprintf("%d", r.Iterations)),
		row("landing", fmt.Sprintf("%.4f m (error %+.2e m)", r.LandingDistance, r.LandingError)),
		row("flight time", fmt.Sprintf("%.3f s", r.FlightTime)),
		row("apex", fmt.Sprintf("%.3f m", r.Apex)),
		row("impact", fmt.Sprintf("%.3f m/s, %.3f J", r.ImpactSpeed, r.ImpactEnergy)),
	}
	for _, c := range r.Collisions {
		rows = append(rows, row("collision", fmt.Sprintf("%s at step %d, (%.3f, %.3f)", c.Barrier, c.Step, c.X, c.Y)))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderReport(config go_bankshot.PhysicalConfig, reports []methodReport) string {
	header := titleStyle.Render(fmt.Sprintf("target %s, launch speed %s, dt %g s",
		config.TargetDistance(), config.LaunchVelocity(), config.TimeStep()))

	blocks := []string{header}
	for _, r := range reports {
		blocks = append(blocks, renderMethod(r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
