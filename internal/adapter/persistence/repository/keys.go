package repository

// Entity-type tokens. They prefix the sort key of every item and act as the
// partition of parent-scoped index keys.
const (
	tokenTenant       = "TENANT"
	tokenCliente      = "CLIENTE"
	tokenPropriedade  = "PROPRIEDADE"
	tokenProjeto      = "PROJETO"
	tokenDocumento    = "DOCUMENTO"
	tokenInteracao    = "INTERACAO"
	tokenOportunidade = "OPORTUNIDADE"
	tokenVisita       = "VISITA"
	tokenSimulacao    = "SIMULACAO"
)

// Attribute tokens for the second index partition.
const (
	attrCpfCnpj      = "CPF_CNPJ"
	attrMunicipio    = "MUNICIPIO"
	attrTipo         = "TIPO"
	attrData         = "DATA"
	attrStatus       = "STATUS"
	attrLinhaCredito = "LINHA_CREDITO"
)

// tenantPartition is the primary-key partition of every item a tenant owns.
func tenantPartition(tenantID string) string {
	return tokenTenant + ":" + tenantID
}

// entitySortKey is the sort key shared by the primary key and both indexes.
func entitySortKey(token, id string) string {
	return token + ":" + id
}

// parentPartition keys the first index: all children of a parent entity.
func parentPartition(parentToken, parentID string) string {
	return parentToken + ":" + parentID
}

// attributePartition keys the second index in the global attribute space
// (e.g. TIPO:<documentType>).
func attributePartition(attrToken, value string) string {
	return attrToken + ":" + value
}

// tenantAttributePartition keys the second index in the tenant-scoped
// attribute space (e.g. TENANT:<t>:MUNICIPIO:<m>).
func tenantAttributePartition(tenantID, attrToken, value string) string {
	return tenantPartition(tenantID) + ":" + attrToken + ":" + value
}
