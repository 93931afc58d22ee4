// Command listctl exercises and benchmarks cowlist lists.
package main

func main() {
	execute()
}
