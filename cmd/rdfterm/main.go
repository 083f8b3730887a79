// rdfterm inspects RDF term values: it parses and encodes literals, orders
// and hashes them, evaluates operators and maintains term indexes.
package main

func main() {
	Execute()
}
