package contract

// The template below is the company's standard rental-purchase contract,
// reproduced clause by clause. Merge points use «secao.campo» tokens,
// optionally with a formatter: |name for party legal names (upper-cased),
// |upper for other shouted fields, |refopt for the reference-phone
// parenthetical that disappears when the field is empty. Everything else
// is substituted verbatim.
var template = []Block{
	{Kind: KindTitle, Style: Style{Center: true}, Text: "CONTRATO DE ALUGUEL COM DIREITO A COMPRA"},
	{Kind: KindTitle, Style: Style{Center: true}, Text: "E RECIBO DE ENTREGA DE VEÍCULO"},

	{Kind: KindClause, Style: Style{Bold: true, Red: true},
		Text: "LOCADOR: «locador.nome|name» «locador.tipoDocumento» «locador.documento» TELEFONE: «locador.telefone»"},

	{Kind: KindClause,
		Text: "LOCATARIO : «cnh.nome|name» CPF:«cnh.cpf» e do RG «cnh.rg» «cnh.orgaoEmissor» " +
			"NASCIMENTO: «cnh.dataNascimento» Residente e domiciliado a Rua:«residencia.endereco» " +
			"«residencia.numero»,«residencia.bairro» CEP:«residencia.cep» «residencia.cidade» " +
			"«residencia.estado» TELEFONE:«cnh.telefone» «cnh.telefoneReferencia|refopt» " +
			"EMAIL:«cnh.email» VEICULO DO CONTRATO – AUTOMOVEL:"},

	{Kind: KindClause, Style: Style{Bold: true},
		Text: "VEICULO: «crlv.marcaModelo|upper» / REN: «crlv.renavam» PLACA:«crlv.placa» " +
			"CHASSI: «crlv.chassi» COR: «crlv.cor|upper» ANO FAB/ MODE: «crlv.anoFabricacao»/«crlv.anoModelo» " +
			"COMBUSTIVEL: «crlv.combustivel|upper»"},

	{Kind: KindClause, Style: Style{Bold: true},
		Text: "VEICULOS SEM GARANTIA DE MOTOR E CAMBIO OBS EESE VEICULO COM GARANTIA 3 MESES"},

	{Kind: KindClause, Style: Style{Bold: true, Red: true},
		Text: "PAGAMENTO DAS PARCELAS POR TOTAL RESPONSABILIDADE DO COMPRADOR – EM CASO DE " +
			"ATRASO O VEICULO SERÁ IMEDIATAMENTE DISPOSTO A BUSCA E APREENSÃO ."},

	{Kind: KindClause, Style: Style{Bold: true},
		Text: "DOCUMENTAÇÃO: LICENCIAMENTO 2025 PAGO OBS : LICENCIAMENTO 2026 SER PAGO PELO LOCATARIO"},

	{Kind: KindClause,
		Text: "3.1 Constituí Objeto do contrato de Aluguel com Direito de Compra,o veiculo (carro ou moto) " +
			"acima Descrito (item 3) para a posse e uso do carro pelo cliente,exclusivamente em território " +
			"nacional,durante o pagamento dos aluguéis (parcelas)do veículo,Certo que o carro/moto da locadora " +
			"não poderá ser objeto de uso inadequado e ilegal. Veiculo não poderá ser vendido enquanto não " +
			"quitar as parcelas."},

	{Kind: KindClause, Style: Style{Bold: true},
		Text: "4-DO PAGAMENTO “ALUGUEL-PARCELA,CUSTOS E MULTAS”"},

	{Kind: KindClause, Text: "► [OBS"},

	{Kind: KindClause,
		Text: "VALOR TOTAL DA VENDA: R$ «extra.valorTotal» ( «extra.valorTotalExtenso» ) REAIS. " +
			"COMO PARTE DE PAGAMENTO NO VALOR DE : R$ «extra.valorAto» «extra.valorAtoExtenso» REAIS NO ATO " +
			",E O RESTANTE FICARÁ DA SEGUINTE FORMA: Restante será pago em : «extra.numeroParcelas» x vezes " +
			"de R$ «extra.valorParcela» ( «extra.valorParcelaExtenso» )"},

	{Kind: KindClause,
		Text: "Iniciadas em : «extra.dataInicio» -vencendo todo dia «extra.diaVencimento» de cada mês subsequente."},

	{Kind: KindClause, Style: Style{Bold: true},
		Text: "APÓS 05 (CINCO) DIAS DE ATRASO O NOME SERA PROTESTADO EM CARTORIO"},

	{Kind: KindClause, Style: Style{Small: true},
		Text: "4.2”CLIENTE” CIENTE QUE O “RECIBO DE COMPRA E VENDA” SÓ SERÁ ENTREGUE APÓS A QUITAÇÃO TOTAL " +
			"DO CARRO/MOTO ,PARA QUE O LOCATÁRIO”CLIENTE” FAÇA A TRANFERÊNCIA DA TITULARIDADE ; AS PARTES " +
			"CONCORDAM QUE ,O VEÍCULO FICARÁ EM NOME DA LOCADORA ATÉ O PAGAMENTO DE TODAS PARCELAS ACIMA DESCRITAS."},

	{Kind: KindClause, Style: Style{Small: true},
		Text: "4.3 CASO TRANSCORRAM 10 (DEZ) DIAS DE ATRASO NO PAGAMENTO DE QUALQUER PARCELA,O CONTRATO SERA " +
			"AUTOMATICAMENTE RESCINDIDO POR CULPA DO LOCATÁRIO E O VEÍCULO SERÁ DEVOLVIDO IMEDIATAMENTE À " +
			"LOCADORA,SEM QULQUER DEVOLUÇÃO DOS VALORES PAGOS PELO “CLIENTE”."},

	{Kind: KindClause, Style: Style{Small: true},
		Text: "4.4 – CASO O LOCATÁRIO ENTREGUE O VEÍCULO NA LOJA PARA A DESISTÊNCIA DO NEGÓCIO,DEVERÁ " +
			"COMPARECER PARA ASSINAR O TERMO DE ENTREGA E EFETUAR O PAGAMENTO..."},

	{Kind: KindClause, Style: Style{Small: true},
		Text: "4.5 – AS PARTES CONVENCIONAM QUE AS MULTAS DEVERÁ SER INFORMADAS À LOCADORA..."},

	{Kind: KindClause, Style: Style{Small: true, Red: true, Bold: true},
		Text: "4.6 – LICENCIAMENTO 2024 PAGO. – Posteriores a compra o cliente assume de pagar ."},

	{Kind: KindClause, Style: Style{Small: true},
		Text: "4.7 – AS MULTAS ,DEMAIS CUSTOS COM IPVA,DPVAT E LICENCIAMENTO... SÃO DE RESPONSABILIDADE " +
			"EXCLUSIVA DO LOCATÁRIO..."},

	{Kind: KindClause, Style: Style{Small: true, Red: true, Bold: true},
		Text: "4.8 – O LOCATÁRIO ESTÁ CIENTE QUE O VEICULO FOI LOCADO NO ESTADO EM QUE SE " +
			"ENCONTRA.VEICULO SEM GARANTIA..."},

	{Kind: KindClause, Style: Style{Bold: true, Center: true},
		Text: "Data da Entrega do Veículo «extra.dataEntrega»"},

	{Kind: KindClause, Style: Style{Bold: true, Center: true},
		Text: "Cliente assina abaixo declarando ler todas as cláusulas e concordando com o acordo firmado."},

	{Kind: KindSignature, Style: Style{Bold: true, Center: true}, Text: "«cnh.nome|name»"},
	{Kind: KindSignature, Style: Style{Bold: true, Center: true}, Text: "CPF: «cnh.cpf»"},
	{Kind: KindSignature, Style: Style{Bold: true, Center: true}, Text: "REPRESENTANTE:____________________"},
}
