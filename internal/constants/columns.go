package constants

// Column headers of the monday.com export after normalization.
const (
	ColDescription     = "Descrição"
	ColLocation        = "Local"
	ColStartDate       = "Cronograma - Start"
	ColEndDate         = "Cronograma - End"
	ColStartTime       = "Hora Início"
	ColEndTime         = "Hora Fim"
	ColStatus          = "Status"
	ColMorningForeman  = "Encarregado Manhã"
	ColNightForeman    = "Encarregado Noite"
	ColPendency        = "Name"
	ColHandover        = "Passagem de Serviço"
	DefaultDescription = "Sem descrição"
)

var (
	TimeColumns = []string{ColStartTime, ColEndTime}
	DateColumns = []string{ColStartDate, ColEndDate}

	// BlankFilled columns never carry a missing value after loading.
	BlankFilled = []string{ColMorningForeman, ColNightForeman, ColStartTime, ColEndTime}

	// OverrideStatus always puts an activity on the sheet, whatever its schedule.
	OverrideStatus = map[string]bool{
		"atraso":       true,
		"em andamento": true,
		"delay":        true,
		"in progress":  true,
	}
)

const (
	DateLayout   = "02/01/2006"
	TimeLayout   = "15:04"
	FolderLayout = "02-01-2006"
)
