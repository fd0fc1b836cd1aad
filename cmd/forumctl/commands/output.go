package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/anonto42/qa-forum/backend/internal/models"
)

// render writes v as indented JSON or as an aligned table
func (a *app) render(w io.Writer, v interface{}) error {
	if a.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	switch v := v.(type) {
	case *models.Question:
		printQuestions(tw, []models.Question{*v})
	case []models.Question:
		printQuestions(tw, v)
	case *models.User:
		printUsers(tw, []models.User{*v})
	case []models.User:
		printUsers(tw, v)
	case *models.Reply:
		printReplies(tw, []models.Reply{*v})
	case []models.Reply:
		printReplies(tw, v)
	default:
		fmt.Fprintln(tw, v)
	}
	return tw.Flush()
}

func printQuestions(w io.Writer, qs []models.Question) {
	fmt.Fprintln(w, "ID\tAUTHOR\tTITLE")
	for _, q := range qs {
		fmt.Fprintf(w, "%d\t%d\t%s\n", q.ID, q.AuthorID, q.Title)
	}
}

func printUsers(w io.Writer, users []models.User) {
	fmt.Fprintln(w, "ID\tFNAME\tLNAME")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.FName, u.LName)
	}
}

func printReplies(w io.Writer, replies []models.Reply) {
	fmt.Fprintln(w, "ID\tQUESTION\tUSER\tPARENT\tBODY")
	for _, r := range replies {
		parent := "-"
		if r.ParentID != nil {
			parent = strconv.FormatInt(*r.ParentID, 10)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", r.ID, r.QuestionID, r.UserID, parent, r.Body)
	}
}
