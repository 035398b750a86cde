package contracts

// entrypointABI is the subset of the ERC-4337 entrypoint contract ABI the
// SDK binds: operation submission and the failure selectors needed to
// decode reverts.
const entrypointABI = `[
  {
    "type": "function",
    "name": "handleOps",
    "inputs": [
      {
        "name": "ops",
        "type": "tuple[]",
        "components": [
          {"name": "sender", "type": "address"},
          {"name": "nonce", "type": "uint256"},
          {"name": "initCode", "type": "bytes"},
          {"name": "callData", "type": "bytes"},
          {"name": "callGasLimit", "type": "uint256"},
          {"name": "verificationGasLimit", "type": "uint256"},
          {"name": "preVerificationGas", "type": "uint256"},
          {"name": "maxFeePerGas", "type": "uint256"},
          {"name": "maxPriorityFeePerGas", "type": "uint256"},
          {"name": "paymasterAndData", "type": "bytes"},
          {"name": "signature", "type": "bytes"}
        ]
      },
      {"name": "beneficiary", "type": "address"}
    ],
    "outputs": [],
    "stateMutability": "nonpayable"
  },
  {
    "type": "error",
    "name": "FailedOp",
    "inputs": [
      {"name": "opIndex", "type": "uint256"},
      {"name": "reason", "type": "string"}
    ]
  }
]`
