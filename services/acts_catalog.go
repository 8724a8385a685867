package services

// Naturaleza constants for legal acts
const (
	NaturalezaJudicial      = "Judicial"
	NaturalezaExtrajudicial = "Extrajudicial"
)

// Ejecutor constants for legal acts
const (
	EjecutorAbogado  = "Abogado"
	EjecutorNotario  = "Notario"
	EjecutorAlguacil = "Alguacil"
)

// CampoDescriptor describes one input field of an act bundle.
// Order within a bundle is meaningful: forms render fields in this order.
type CampoDescriptor struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // text, date, number, select
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// ActoBundle is one entry of the static legal-act catalog: template body plus
// its structured input schema and classification metadata.
type ActoBundle struct {
	Slug                     string            `json:"slug"`
	Nombre                   string            `json:"nombre"`
	Materia                  string            `json:"materia"`
	Naturaleza               string            `json:"naturaleza"` // Judicial, Extrajudicial
	Ejecutor                 string            `json:"ejecutor"`
	Fields                   []CampoDescriptor `json:"fields"`
	Plantilla                string            `json:"-"`
	IncluirClausulasGlobales bool              `json:"incluir_clausulas_globales"`
}

// globalClausesText is the shared boilerplate appended to bundles flagged
// with IncluirClausulasGlobales. Single catalog entry, never per-bundle.
const globalClausesText = `
## Cláusulas Generales

**ELECCIÓN DE DOMICILIO:** Para todos los fines y consecuencias legales del presente acto, las partes eligen domicilio en las direcciones indicadas en el encabezado.

**LEY APLICABLE:** El presente acto se rige por las leyes de la República Dominicana, en particular el Código Civil y la Ley No. 140-15 del Notariado.

**BUENA FE:** Las partes declaran que las informaciones suministradas son ciertas y que actúan de buena fe, conscientes de las sanciones previstas para el perjurio y la falsedad en escritura.
`

var partesFields = []CampoDescriptor{
	{Key: "requirente_nombre", Label: "Nombre del requirente", Type: "text", Required: true},
	{Key: "requirente_cedula", Label: "Cédula del requirente", Type: "text", Required: true},
	{Key: "requirente_domicilio", Label: "Domicilio del requirente", Type: "text", Required: true},
	{Key: "requerido_nombre", Label: "Nombre del requerido", Type: "text", Required: true},
	{Key: "requerido_domicilio", Label: "Domicilio del requerido", Type: "text", Required: true},
}

// actosCatalog is the static act catalog, loaded once per process and never
// mutated. Insertion order is the order filtered listings preserve.
var actosCatalog = []ActoBundle{
	{
		Slug:       "intimacion-de-pago",
		Nombre:     "Intimación de Pago",
		Materia:    "Civil",
		Naturaleza: NaturalezaExtrajudicial,
		Ejecutor:   EjecutorAlguacil,
		Fields: append(append([]CampoDescriptor{}, partesFields...),
			CampoDescriptor{Key: "monto_adeudado", Label: "Monto adeudado (RD$)", Type: "number", Required: true},
			CampoDescriptor{Key: "origen_deuda", Label: "Origen de la deuda", Type: "text", Required: true},
			CampoDescriptor{Key: "plazo_dias", Label: "Plazo otorgado (días)", Type: "number", Required: true},
		),
		Plantilla: `# ACTO DE INTIMACIÓN DE PAGO

En la ciudad de {{ciudad}}, República Dominicana, a los {{fecha_larga}}.

A requerimiento de **{{requirente_nombre}}**, portador de la cédula de identidad y electoral No. {{requirente_cedula}}, domiciliado en {{requirente_domicilio}}, yo, alguacil infrascrito, me he trasladado al domicilio de **{{requerido_nombre}}**, sito en {{requerido_domicilio}}, y una vez allí le he INTIMADO formalmente a pagar la suma de **RD$ {{monto_adeudado}}**, adeudada por concepto de {{origen_deuda}}.

Se le otorga un plazo de **{{plazo_dias}} días francos** a partir de la notificación del presente acto, vencido el cual mi requirente procederá por las vías de derecho correspondientes.
`,
		IncluirClausulasGlobales: false,
	},
	{
		Slug:       "demanda-en-cobro-de-pesos",
		Nombre:     "Demanda en Cobro de Pesos",
		Materia:    "Civil",
		Naturaleza: NaturalezaJudicial,
		Ejecutor:   EjecutorAbogado,
		Fields: append(append([]CampoDescriptor{}, partesFields...),
			CampoDescriptor{Key: "tribunal", Label: "Tribunal apoderado", Type: "text", Required: true},
			CampoDescriptor{Key: "monto_adeudado", Label: "Monto adeudado (RD$)", Type: "number", Required: true},
			CampoDescriptor{Key: "fundamento", Label: "Fundamento de la demanda", Type: "text", Required: true},
		),
		Plantilla: `# DEMANDA EN COBRO DE PESOS

**AL:** {{tribunal}}

**DEMANDANTE:** {{requirente_nombre}}, cédula No. {{requirente_cedula}}, domiciliado en {{requirente_domicilio}}.

**DEMANDADO:** {{requerido_nombre}}, domiciliado en {{requerido_domicilio}}.

**ATENDIDO:** A que el demandado adeuda al demandante la suma de **RD$ {{monto_adeudado}}**, conforme a {{fundamento}};

**POR TALES MOTIVOS**, el demandante solicita muy respetuosamente que el tribunal condene al demandado al pago de la suma adeudada, más los intereses legales y las costas del procedimiento.
`,
		IncluirClausulasGlobales: false,
	},
	{
		Slug:       "poder-especial",
		Nombre:     "Poder Especial de Representación",
		Materia:    "Civil",
		Naturaleza: NaturalezaExtrajudicial,
		Ejecutor:   EjecutorNotario,
		Fields: []CampoDescriptor{
			{Key: "poderdante_nombre", Label: "Nombre del poderdante", Type: "text", Required: true},
			{Key: "poderdante_cedula", Label: "Cédula del poderdante", Type: "text", Required: true},
			{Key: "apoderado_nombre", Label: "Nombre del apoderado", Type: "text", Required: true},
			{Key: "apoderado_cedula", Label: "Cédula del apoderado", Type: "text", Required: true},
			{Key: "objeto", Label: "Objeto del poder", Type: "text", Required: true},
		},
		Plantilla: `# PODER ESPECIAL

Yo, **{{poderdante_nombre}}**, cédula No. {{poderdante_cedula}}, por medio del presente acto otorgo PODER ESPECIAL, tan amplio y suficiente como en derecho fuere necesario, a **{{apoderado_nombre}}**, cédula No. {{apoderado_cedula}}, para que en mi nombre y representación pueda: {{objeto}}.

El presente poder se limita estrictamente al objeto indicado y estará vigente hasta su revocación expresa.
`,
		IncluirClausulasGlobales: true,
	},
	{
		Slug:       "declaracion-jurada-de-solteria",
		Nombre:     "Declaración Jurada de Soltería",
		Materia:    "Familia",
		Naturaleza: NaturalezaExtrajudicial,
		Ejecutor:   EjecutorNotario,
		Fields: []CampoDescriptor{
			{Key: "declarante_nombre", Label: "Nombre del declarante", Type: "text", Required: true},
			{Key: "declarante_cedula", Label: "Cédula del declarante", Type: "text", Required: true},
			{Key: "declarante_domicilio", Label: "Domicilio del declarante", Type: "text", Required: true},
			{Key: "finalidad", Label: "Finalidad de la declaración", Type: "text", Required: false},
		},
		Plantilla: `# DECLARACIÓN JURADA DE SOLTERÍA

Quien suscribe, **{{declarante_nombre}}**, cédula No. {{declarante_cedula}}, domiciliado en {{declarante_domicilio}}, DECLARA BAJO LA FE DEL JURAMENTO que a la fecha del presente acto es de estado civil **soltero(a)** y que no ha contraído matrimonio ni sostiene unión consensual registrada.

La presente declaración se expide para fines de {{finalidad}}.
`,
		IncluirClausulasGlobales: true,
	},
	{
		Slug:       "contrato-de-venta-de-inmueble",
		Nombre:     "Contrato de Venta de Inmueble",
		Materia:    "Inmobiliaria",
		Naturaleza: NaturalezaExtrajudicial,
		Ejecutor:   EjecutorNotario,
		Fields: []CampoDescriptor{
			{Key: "vendedor_nombre", Label: "Nombre del vendedor", Type: "text", Required: true},
			{Key: "vendedor_cedula", Label: "Cédula del vendedor", Type: "text", Required: true},
			{Key: "comprador_nombre", Label: "Nombre del comprador", Type: "text", Required: true},
			{Key: "comprador_cedula", Label: "Cédula del comprador", Type: "text", Required: true},
			{Key: "designacion_catastral", Label: "Designación catastral", Type: "text", Required: true},
			{Key: "precio", Label: "Precio de venta (RD$)", Type: "number", Required: true},
			{Key: "forma_pago", Label: "Forma de pago", Type: "select", Required: true, Options: []string{"Contado", "Financiado", "Mixto"}},
		},
		Plantilla: `# CONTRATO DE VENTA DE INMUEBLE

Entre **{{vendedor_nombre}}**, cédula No. {{vendedor_cedula}} (EL VENDEDOR), y **{{comprador_nombre}}**, cédula No. {{comprador_cedula}} (EL COMPRADOR), se ha convenido lo siguiente:

**PRIMERO:** EL VENDEDOR vende, cede y transfiere a EL COMPRADOR el inmueble identificado con la designación catastral **{{designacion_catastral}}**.

**SEGUNDO:** El precio convenido es de **RD$ {{precio}}**, pagadero bajo la modalidad: {{forma_pago}}.

**TERCERO:** EL VENDEDOR garantiza que el inmueble se encuentra libre de cargas y gravámenes.
`,
		IncluirClausulasGlobales: true,
	},
	{
		Slug:       "demanda-en-desalojo",
		Nombre:     "Demanda en Desalojo",
		Materia:    "Inmobiliaria",
		Naturaleza: NaturalezaJudicial,
		Ejecutor:   EjecutorAbogado,
		Fields: append(append([]CampoDescriptor{}, partesFields...),
			CampoDescriptor{Key: "tribunal", Label: "Tribunal apoderado", Type: "text", Required: true},
			CampoDescriptor{Key: "inmueble_direccion", Label: "Dirección del inmueble", Type: "text", Required: true},
			CampoDescriptor{Key: "causa", Label: "Causa del desalojo", Type: "select", Required: true, Options: []string{"Falta de pago", "Vencimiento del contrato", "Uso indebido"}},
		),
		Plantilla: `# DEMANDA EN DESALOJO

**AL:** {{tribunal}}

**DEMANDANTE:** {{requirente_nombre}}, cédula No. {{requirente_cedula}}.

**DEMANDADO:** {{requerido_nombre}}, ocupante del inmueble sito en {{inmueble_direccion}}.

**ATENDIDO:** A que procede el desalojo por la causa de **{{causa}}**;

**POR TALES MOTIVOS**, se solicita ordenar el desalojo inmediato del demandado y de cualquier otra persona que ocupe el inmueble descrito.
`,
		IncluirClausulasGlobales: false,
	},
	{
		Slug:       "acto-de-notoriedad",
		Nombre:     "Acto de Notoriedad",
		Materia:    "Familia",
		Naturaleza: NaturalezaExtrajudicial,
		Ejecutor:   EjecutorNotario,
		Fields: []CampoDescriptor{
			{Key: "solicitante_nombre", Label: "Nombre del solicitante", Type: "text", Required: true},
			{Key: "solicitante_cedula", Label: "Cédula del solicitante", Type: "text", Required: true},
			{Key: "hecho_notorio", Label: "Hecho a hacer constar", Type: "text", Required: true},
			{Key: "testigos", Label: "Testigos (nombres y cédulas)", Type: "text", Required: true},
		},
		Plantilla: `# ACTO DE NOTORIEDAD

A requerimiento de **{{solicitante_nombre}}**, cédula No. {{solicitante_cedula}}, y en presencia de los testigos {{testigos}}, quienes declaran conocer personalmente los hechos, se hace constar como NOTORIO Y PÚBLICO lo siguiente:

{{hecho_notorio}}

Los comparecientes afirman la veracidad de lo declarado bajo la fe del juramento.
`,
		IncluirClausulasGlobales: true,
	},
}
