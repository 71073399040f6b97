package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

func renderElections(w io.Writer, elections []votesdk.ElectionResponse) {
	if len(elections) == 0 {
		fmt.Fprintln(w, "no elections")
		return
	}

	table := newTable(w, "ID", "Title", "Status", "Starts", "Ends", "Positions")
	for _, e := range elections {
		table.Append([]string{
			e.ID,
			e.Title,
			e.Status,
			e.StartTime.Local().Format(timeLayout),
			e.EndTime.Local().Format(timeLayout),
			strconv.Itoa(len(e.Positions)),
		})
	}
	table.Render()
}

// renderResults prints one row per candidate. Rows keep the server's order,
// which is highest vote count first within each position.
func renderResults(w io.Writer, res *votesdk.ResultsResponse) {
	fmt.Fprintf(w, "%s (%s), %d ballot(s) cast\n\n", res.ElectionTitle, res.ClubName, res.TotalBallotsCast)

	table := newTable(w, "Position", "Candidate", "Votes", "Share")
	for _, pos := range res.Results {
		for i, c := range pos.Candidates {
			title := ""
			if i == 0 {
				title = pos.PositionTitle
			}
			table.Append([]string{title, c.Name, strconv.Itoa(c.VoteCount), share(c.VoteCount, res.TotalBallotsCast)})
		}
	}
	table.Render()
}

func renderAnalytics(w io.Writer, a *votesdk.AnalyticsResponse) {
	fmt.Fprintf(w, "Turnout: %d of %d eligible voters (%.2f%%)\n\n",
		a.TotalVotersWhoVoted, a.TotalEligibleVoters, a.ParticipationRate)

	faculties := make([]string, 0, len(a.VotesByFaculty))
	for f := range a.VotesByFaculty {
		faculties = append(faculties, f)
	}
	sort.Slice(faculties, func(i, j int) bool {
		ci, cj := a.VotesByFaculty[faculties[i]], a.VotesByFaculty[faculties[j]]
		if ci != cj {
			return ci > cj
		}
		return faculties[i] < faculties[j]
	})

	table := newTable(w, "Faculty", "Voters")
	for _, f := range faculties {
		table.Append([]string{f, strconv.Itoa(a.VotesByFaculty[f])})
	}
	table.Render()
}

func share(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}
