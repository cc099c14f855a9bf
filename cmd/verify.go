package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pyverify/internal/transpiler"
	"pyverify/internal/verify"
)

var verifyCommand = &cobra.Command{
	Use:   "verify",
	Short: "verify python code against its embedded pre/post conditions",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		if err := verifyExec(); err != nil {
			fmt.Printf("service err: %v", err)
		} else {
			fmt.Printf("service quit")
		}
	},
}

var (
	verifyFile    string
	verifyIsSMT   bool
	solverBinary  string
	solverTimeout time.Duration
	keepArtifacts bool
)

func init() {
	verifyCommand.Flags().StringVar(&verifyFile, "file", "", "python source file to verify")
	verifyCommand.Flags().BoolVar(&verifyIsSMT, "smt", false, "treat --file as an already exported SMT-LIB document")
	verifyCommand.Flags().StringVar(&solverBinary, "solver", "z3", "decision procedure binary")
	verifyCommand.Flags().DurationVar(&solverTimeout, "timeout", verify.DefaultTimeout, "solver time budget")
	verifyCommand.Flags().BoolVar(&keepArtifacts, "keep", false, "keep query artifacts for inspection")
}

func verifyExec() error {
	ctx := context.Background()

	verifier := verify.NewVerifier(solverBinary, solverTimeout)
	verifier.Keep = keepArtifacts

	smtPath := verifyFile
	if !verifyIsSMT {
		source, err := os.ReadFile(verifyFile)
		if err != nil {
			return err
		}
		exported, cleanup, err := transpiler.New().ExportSMT(ctx, string(source))
		if err != nil {
			return err
		}
		defer cleanup()
		smtPath = exported
	}

	report, err := verifier.VerifyFile(ctx, smtPath)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}
