// Command seed exports the built-in question bank to a YAML file, or
// validates an existing bank file, so curriculum edits can be checked before
// deployment.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"excel-mock-interviewer/internal/question"
)

func main() {
	out := flag.String("out", "", "write the built-in bank to this YAML file")
	check := flag.String("check", "", "validate an existing bank YAML file")
	flag.Parse()

	switch {
	case *check != "":
		bank, err := question.LoadFile(*check)
		if err != nil {
			log.Fatalf("Invalid question bank: %v", err)
		}
		fmt.Printf("%s: %d questions OK\n", *check, bank.Len())

	case *out != "":
		data, err := question.Default().MarshalYAML()
		if err != nil {
			log.Fatalf("Failed to render bank: %v", err)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		fmt.Printf("Wrote %d questions to %s\n", question.Default().Len(), *out)

	default:
		flag.Usage()
		os.Exit(2)
	}
}
