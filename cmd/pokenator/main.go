package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pokenator/pokenator/internal/engine"
	"github.com/pokenator/pokenator/internal/pokedex"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	dataset, err := pokedex.Load()
	if err != nil {
		return fmt.Errorf("loading pokedex: %w", err)
	}
	eng, err := engine.New(dataset)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	fmt.Fprintln(stdout, "\nBienvenue dans Pokenator!")
	fmt.Fprintln(stdout, "Pensez à un Pokémon de la première génération, et je vais essayer de le deviner!")
	fmt.Fprintln(stdout, "Répondez par 'o' (oui), 'n' (non) ou '?' (je ne sais pas) aux questions.")

	session := eng.StartSession()
	in := bufio.NewScanner(stdin)

	for {
		step := session.Next()

		switch step.State {
		case engine.StateSolved:
			fmt.Fprintf(stdout, "\nSuper! C'est %s! J'ai trouvé!\n", step.Solution.Name)
			return nil
		case engine.StateNoMatch:
			fmt.Fprintf(stdout, "\n%s\n", engine.NoMatchMessage)
			return nil
		}

		fmt.Fprintf(stdout, "\nIl reste %d Pokémon possibles...\n", session.Remaining())
		if session.Remaining() <= 5 {
			names := make([]string, 0, session.Remaining())
			for _, p := range session.Candidates() {
				names = append(names, p.Name)
			}
			fmt.Fprintf(stdout, "Il reste: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintf(stdout, "\n%s\n", step.Question.Prompt)

		answer, ok := readAnswer(in, stdout)
		if !ok {
			return nil
		}

		if step.Question.Kind == engine.KindGuess {
			switch answer {
			case engine.AnswerYes:
				fmt.Fprintln(stdout, "\nSuper! J'ai trouvé!")
				return nil
			case engine.AnswerNo:
				fmt.Fprintln(stdout, "\nAh, je me suis trompé!")
			}
		}

		if _, err := session.Apply(*step.Question, answer); err != nil {
			return err
		}
	}
}

// readAnswer prompts until the player gives a recognizable answer. Returns
// false when stdin closes.
func readAnswer(in *bufio.Scanner, stdout io.Writer) (engine.Answer, bool) {
	for {
		fmt.Fprint(stdout, "(o/n/?) > ")
		if !in.Scan() {
			return 0, false
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "o", "oui", "y", "yes":
			return engine.AnswerYes, true
		case "n", "non", "no":
			return engine.AnswerNo, true
		case "?", "jsp", "je ne sais pas":
			return engine.AnswerUnknown, true
		default:
			fmt.Fprintln(stdout, "Je n'ai pas compris votre réponse. Utilisez 'o' pour oui, 'n' pour non ou '?' si vous ne savez pas.")
		}
	}
}
