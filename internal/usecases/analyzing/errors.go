package analyzing

import "errors"

var (
	// ErrConfigurationMissing indica que o mês não tem configuração global ou
	// não tem nenhum salário cadastrado. O batch inteiro é abortado.
	ErrConfigurationMissing = errors.New("configuração de análise ausente para o mês de referência")

	// ErrInvalidMargin indica margem de lucro negativa na configuração global.
	ErrInvalidMargin = errors.New("percentual de margem de lucro inválido")

	// ErrInvalidHoursFactor indica fator de horas mensal menor ou igual a zero.
	ErrInvalidHoursFactor = errors.New("fator de horas mensal padrão inválido")

	// ErrNoAnalyzableInvoices indica que o mês não tem nenhum faturamento com
	// alocação de esforço lançada.
	ErrNoAnalyzableInvoices = errors.New("nenhum faturamento com esforço lançado no mês de referência")

	// ErrAnalysisNotFound indica que a análise alvo da edição não existe.
	ErrAnalysisNotFound = errors.New("análise contratual não encontrada")

	// ErrInvalidContractValue indica valor de contrato negativo ou não numérico.
	ErrInvalidContractValue = errors.New("valor de contrato atual inválido")

	// ErrInvalidReferenceMonth indica mes_ano fora do formato aceito.
	ErrInvalidReferenceMonth = errors.New("mês de referência inválido, use o formato YYYY-MM-DD")
)
