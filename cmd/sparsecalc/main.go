// Command sparsecalc is the interactive front-end of the sparse matrix
// calculator. It prompts for an operation (1=add, 2=subtract,
// 3=multiply) and two matrix file paths, prints the result in the
// canonical format, and optionally saves it.
//
// All core errors (unreadable file, malformed file, dimension
// mismatch) are reported as one-line messages with exit status 1,
// never as panics.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/codec"
	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/matfile"
	"github.com/Dankagame/DSA-HW01---Sparse-Matrix/sparse"
)

// operation couples a menu choice with its engine call.
type operation struct {
	name string
	run  func(a, b *sparse.Matrix) (*sparse.Matrix, error)
}

var operations = map[string]operation{
	"1": {name: "Addition", run: sparse.Add},
	"2": {name: "Subtraction", run: sparse.Sub},
	"3": {name: "Multiplication", run: sparse.Mul},
}

func main() {
	in := bufio.NewReader(os.Stdin)

	fmt.Println("Sparse Matrix Calculator")
	fmt.Println("-----------------------")
	fmt.Println("Available Operations:")
	fmt.Println("1. Add two matrices")
	fmt.Println("2. Subtract two matrices")
	fmt.Println("3. Multiply two matrices")

	choice := prompt(in, "Choose an operation (1, 2, or 3): ")
	op, ok := operations[choice]
	if !ok {
		fail("Error: Please select 1, 2, or 3.")
	}

	fmt.Println()
	fmt.Println("Select matrix files:")
	firstPath := promptFilePath(in, "1", "first")
	secondPath := promptFilePath(in, "2", "second")

	first, err := matfile.Load(firstPath)
	if err != nil {
		fail(fmt.Sprintf("Error loading matrices: %v", err))
	}
	second, err := matfile.Load(secondPath)
	if err != nil {
		fail(fmt.Sprintf("Error loading matrices: %v", err))
	}

	result, err := op.run(first, second)
	if err != nil {
		fail(fmt.Sprintf("Error during %s: %v", strings.ToLower(op.name), err))
	}

	fmt.Printf("\n%s completed successfully.\n", op.name)
	fmt.Println("\nResult:")
	fmt.Println(codec.Serialize(result))

	if strings.ToLower(prompt(in, "\nWould you like to save the result to a file? (y/n): ")) == "y" {
		outPath := prompt(in, "Enter the output file path: ")
		if err = matfile.Save(outPath, result); err != nil {
			fail(fmt.Sprintf("Error saving result: %v", err))
		}
		fmt.Printf("Result saved to %s\n", outPath)
	}
}

// promptFilePath runs the two-step file selection: the user first
// acknowledges the slot by typing its number, then enters the path.
func promptFilePath(in *bufio.Reader, slot, ordinal string) string {
	if prompt(in, fmt.Sprintf("Enter %s to specify the %s matrix file path: ", slot, ordinal)) != slot {
		fail(fmt.Sprintf("Error: Please enter '%s' to specify the %s file.", slot, ordinal))
	}
	return prompt(in, fmt.Sprintf("Enter the path for the %s matrix file: ", ordinal))
}

// prompt prints msg and returns the next input line, trimmed.
func prompt(in *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		fail("Error: no input.")
	}
	return strings.TrimSpace(line)
}

// fail prints a human-readable message to stderr and exits non-zero.
func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
