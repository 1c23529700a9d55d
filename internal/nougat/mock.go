package nougat

import "context"

// MockLaTeX is returned verbatim for every document in mock mode.
const MockLaTeX = `
\section*{Alice Barista}
\begin{center}
123 Coffee Lane, Jersey City, NJ | (555) 012-3456 | alice@example.com
\end{center}

\section*{Experience}
\begin{itemize}
    \item \textbf{Barista}, Joe's Coffee (2021--Present): 
    Managed espresso bar during morning rush (300+ tickets/day). 
    Trained 5 new staff members on La Marzocco machines.
    
    \item \textbf{Cashier}, The Bagel Shop (2019--2021): 
    Handled POS transactions and closing duties.
\end{itemize}

\section*{Skills}
\begin{tabular}{ll}
    Coffee & Espresso, Latte Art, Pour Over \\
    Service & Square POS, Inventory Management \\
\end{tabular}
`

// PlaceholderLaTeX is returned when mock mode is off.
const PlaceholderLaTeX = "[Real Nougat inference not yet implemented in this stub. Enable Mock Mode.]"

// Mock ignores the document and returns MockLaTeX.
type Mock struct{}

// Extract returns MockLaTeX.
func (Mock) Extract(ctx context.Context, doc Document) (string, error) {
	return MockLaTeX, nil
}

// Unimplemented stands in for the model-backed extractor.
type Unimplemented struct{}

// Extract returns PlaceholderLaTeX.
func (Unimplemented) Extract(ctx context.Context, doc Document) (string, error) {
	return PlaceholderLaTeX, nil
}
