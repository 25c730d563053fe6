package domain

// MonthsInHorizon é o tamanho do horizonte de projeção
const MonthsInHorizon = 12

// Months é o eixo temporal compartilhado por todas as tabelas, na ordem cronológica
var Months = [MonthsInHorizon]string{
	"Jan 2025", "Feb 2025", "Mar 2025", "Apr 2025", "May 2025", "Jun 2025",
	"Jul 2025", "Aug 2025", "Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025",
}

// MonthColumn é o nome da coluna-chave das tabelas mensais
const MonthColumn = "Month"
