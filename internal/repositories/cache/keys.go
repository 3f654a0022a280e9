package cache

// TransactionStatusKey is where the status view of a transaction is cached.
func TransactionStatusKey(reference string) string {
	return GenerateKey("transaction", "status", reference)
}
