package cmd

type Config struct {
	HTTPPort       string
	BackendBaseURL string
	BackendTimeout string
	TaxBasisPoints string
}
