// Package schema defines the canonical typed record that every pipeline
// stage trusts: the data extracted from identity, residence and
// vehicle-registration documents, grouped into the five fixed sections of
// the rental-purchase contract.
package schema

// Locador identifies the lessor (the company side of the contract).
type Locador struct {
	Nome          string `json:"nome"`
	Documento     string `json:"documento"`
	TipoDocumento string `json:"tipoDocumento"`
	Telefone      string `json:"telefone"`
}

// CNH holds the lessee's identity as read from the driver's license.
type CNH struct {
	Nome               string `json:"nome"`
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
	OrgaoEmissor       string `json:"orgaoEmissor"`
	DataNascimento     string `json:"dataNascimento"`
	Telefone           string `json:"telefone"`
	TelefoneReferencia string `json:"telefoneReferencia"`
	Email              string `json:"email"`
}

// Residencia holds the lessee's address as read from a proof of residence.
type Residencia struct {
	Endereco string `json:"endereco"`
	Numero   string `json:"numero"`
	Bairro   string `json:"bairro"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado"`
	CEP      string `json:"cep"`
}

// CRLV holds the vehicle data as read from the registration document.
type CRLV struct {
	MarcaModelo   string `json:"marcaModelo"`
	AnoModelo     string `json:"anoModelo"`
	AnoFabricacao string `json:"anoFabricacao"`
	Placa         string `json:"placa"`
	Renavam       string `json:"renavam"`
	Chassi        string `json:"chassi"`
	Cor           string `json:"cor"`
	Combustivel   string `json:"combustivel"`
}

// Extra holds the commercial terms entered by the operator. Values are
// display-ready text: the contract reproduces the operator's formatting
// verbatim, so nothing here is parsed into numeric or date types.
type Extra struct {
	ValorTotal          string `json:"valorTotal"`
	ValorTotalExtenso   string `json:"valorTotalExtenso"`
	ValorAto            string `json:"valorAto"`
	ValorAtoExtenso     string `json:"valorAtoExtenso"`
	NumeroParcelas      string `json:"numeroParcelas"`
	ValorParcela        string `json:"valorParcela"`
	ValorParcelaExtenso string `json:"valorParcelaExtenso"`
	DataInicio          string `json:"dataInicio"`
	DataEntrega         string `json:"dataEntrega"`
	DiaVencimento       string `json:"diaVencimento"`
}

// ExtractedData is the aggregate passed between every pipeline stage.
// All fields are always present; an unknown value is the empty string,
// never an absent key, so consumers may index any field unconditionally.
type ExtractedData struct {
	Locador    Locador    `json:"locador"`
	CNH        CNH        `json:"cnh"`
	Residencia Residencia `json:"residencia"`
	CRLV       CRLV       `json:"crlv"`
	Extra      Extra      `json:"extra"`
}

// Clone returns an independent deep copy. Every field is a plain string,
// so struct assignment already copies the whole aggregate; the method
// exists so copy-on-write hand-offs between stages read as intent.
func (d ExtractedData) Clone() ExtractedData {
	return d
}

// NewEmpty returns an all-empty record seeded with the configured lessor
// identity. This is the manual-entry path: the operator fills everything
// by hand in verification.
func NewEmpty(locador Locador) ExtractedData {
	return ExtractedData{Locador: locador}
}
