package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyverify/internal/transpiler"
)

var transpileCommand = &cobra.Command{
	Use:   "transpile",
	Short: "transpile python code to another language",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		if err := transpileExec(); err != nil {
			fmt.Printf("service err: %v", err)
		} else {
			fmt.Printf("service quit")
		}
	},
}

var (
	transpileFile   string
	transpileTarget string
	transpileLLM    bool
)

func init() {
	transpileCommand.Flags().StringVar(&transpileFile, "file", "", "python source file to transpile")
	transpileCommand.Flags().StringVar(&transpileTarget, "target", "", "target language")
	transpileCommand.Flags().BoolVar(&transpileLLM, "llm", false, "use llm-assisted translation for complex code")
}

func transpileExec() error {
	source, err := os.ReadFile(transpileFile)
	if err != nil {
		return err
	}
	result, err := transpiler.New().Transpile(context.Background(), string(source), transpileTarget, transpileLLM)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
