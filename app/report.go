package app

import "fmt"

func (a *App) printApplication(ap Application) {
	verdict := "yes"
	if !ap.Feasible {
		verdict = fmt.Sprintf("no (%d uncovered)", len(ap.Uncovered))
	}
	fmt.Fprintf(a.out, "verified %s\n", verdict)
	fmt.Fprintf(a.out, "\tnodes %d\n", ap.Size)
	fmt.Fprintf(a.out, "\ttime %.2f\n", ap.Elapsed.Seconds())
	fmt.Fprintf(a.out, "end application %d\n", ap.Index)
}
