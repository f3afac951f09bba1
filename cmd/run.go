package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/intake/internal/assess"
	"github.com/abhisek/intake/internal/schema"
	"github.com/abhisek/intake/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer the questionnaire interactively",
	Long: "Run walks through every unanswered applicable question in schema\n" +
		"order, prompting on the terminal. Answers are persisted as they are\n" +
		"accepted, so an interrupted run can be resumed. Editing an answer can\n" +
		"make later questions applicable; run keeps sweeping until nothing is\n" +
		"left to ask.",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadSchema(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		sess := assess.NewSession()
		if id, _ := cmd.Flags().GetString("session"); id != "" {
			sess, err = st.LoadSession(ctx, id)
			if err != nil {
				return err
			}
		} else {
			if err := st.CreateSession(ctx, sess); err != nil {
				return err
			}
			fmt.Printf("session %s\n\n", sess.ID())
		}

		reader := bufio.NewReader(os.Stdin)
		bold := color.New(color.Bold)

		// Applicability can change after each answer, so sweep until a
		// full pass asks nothing.
		for {
			asked := false
			app := assess.Applicability(sc, sess)

			for _, sec := range sc.Sections() {
				sectionShown := false
				for _, q := range sec.Questions {
					if !app[q.ID] || sessionAnswered(sess, q.ID) {
						continue
					}

					if !sectionShown {
						bold.Printf("== %s ==\n\n", sec.Title)
						sectionShown = true
					}

					value, err := promptAnswer(reader, q)
					if err != nil {
						return err
					}
					if value == "" {
						if q.Required {
							color.Yellow("required question skipped for now\n")
						}
						continue
					}

					if err := sess.Submit(sc, q.ID, value); err != nil {
						var ae *assess.AnswerError
						if errors.As(err, &ae) {
							color.Red("%v\n", ae)
							continue
						}
						return err
					}
					if err := st.SaveAnswer(ctx, sess.ID(), q.ID, value); err != nil {
						return err
					}
					asked = true

					// Recompute: this answer may gate later questions.
					app = assess.Applicability(sc, sess)
				}
			}

			if !asked {
				break
			}
		}

		p := assess.Progress(sc, sess)
		fmt.Printf("\n%d/%d applicable questions answered\n", p.Answered, p.Total)
		if p.Complete() {
			if err := st.SetStatus(ctx, sess.ID(), store.StatusCompleted); err != nil {
				return err
			}
			color.Green("assessment complete; run `intake report --session %s` to export", sess.ID())
		} else {
			color.Yellow("still missing: %s", strings.Join(p.MissingRequired, ", "))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().String("session", "", "Resume an existing session instead of starting a new one")
}

// promptAnswer shows one question and reads a single-line answer. For
// single_choice questions an option may be picked by number or by its exact
// label. An empty line skips the question.
func promptAnswer(reader *bufio.Reader, q schema.Question) (string, error) {
	required := ""
	if q.Required {
		required = " (required)"
	}
	fmt.Printf("%s%s\n%s\n", q.ID, required, q.Prompt)
	for i, opt := range q.Options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}
	fmt.Print("> ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read answer: %w", err)
	}
	value := strings.TrimSpace(line)

	// Translate a numeric pick into the option label.
	if q.Type == schema.AnswerSingleChoice {
		if idx, err := strconv.Atoi(value); err == nil && idx >= 1 && idx <= len(q.Options) {
			value = q.Options[idx-1]
		}
	}

	fmt.Println()
	return value, nil
}
